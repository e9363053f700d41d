package endpoint

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/ariebrainware/clinic-management/auth"
	"github.com/ariebrainware/clinic-management/middleware"
	"github.com/ariebrainware/clinic-management/model"
	"github.com/ariebrainware/clinic-management/util"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func clientInfo(c *gin.Context) auth.ClientInfo {
	return auth.ClientInfo{IP: c.ClientIP(), UserAgent: c.Request.UserAgent()}
}

func getDBOrRespond(c *gin.Context) (*gorm.DB, bool) {
	db := middleware.GetDB(c)
	if db == nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Database connection not available", Err: fmt.Errorf("db is nil")})
		return nil, false
	}
	return db, true
}

// bindOrRespond binds form or JSON input depending on Content-Type and
// answers 400 with a readable validation message on failure.
func bindOrRespond(c *gin.Context, dst interface{}, redirect string) bool {
	if err := c.ShouldBind(dst); err != nil {
		util.CallUserError(c, util.APIErrorParams{
			Msg:      util.FormatValidationError(err),
			Err:      err,
			Redirect: redirect,
		})
		return false
	}
	return true
}

// parseIDParam reads a numeric path parameter. An id that cannot exist is a 404.
func parseIDParam(c *gin.Context, name, notFoundMsg string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		util.CallErrorNotFound(c, util.APIErrorParams{Msg: notFoundMsg, Err: fmt.Errorf("invalid %s %q", name, c.Param(name))})
		return 0, false
	}
	return uint(id), true
}

// firstOrRespond loads dst by primary key: 404 when missing, 500 on any other error.
func firstOrRespond(c *gin.Context, db *gorm.DB, dst interface{}, id uint, notFoundMsg, redirect string) bool {
	err := db.First(dst, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		util.CallErrorNotFound(c, util.APIErrorParams{Msg: notFoundMsg, Err: err, Redirect: redirect})
		return false
	}
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Database error", Err: err})
		return false
	}
	return true
}

func patientFromParamOrRespond(c *gin.Context, db *gorm.DB) (model.Patient, bool) {
	var patient model.Patient
	id, ok := parseIDParam(c, "patient_id", "Patient not found")
	if !ok {
		return patient, false
	}
	return patient, firstOrRespond(c, db, &patient, id, "Patient not found", "/")
}

func doctorFromParamOrRespond(c *gin.Context, db *gorm.DB) (model.Doctor, bool) {
	var doctor model.Doctor
	id, ok := parseIDParam(c, "doctor_id", "Doctor not found")
	if !ok {
		return doctor, false
	}
	return doctor, firstOrRespond(c, db, &doctor, id, "Doctor not found", "")
}

// changeParams describes a mutation on target made by the caller, if one is logged in.
func changeParams(c *gin.Context, targetKind model.PrincipalKind, targetID uint, detail string) util.ChangeParams {
	p := util.ChangeParams{IP: c.ClientIP(), TargetKind: targetKind, TargetID: targetID, Detail: detail}
	if identity, ok := middleware.GetIdentity(c); ok {
		p.ActorKind = identity.Kind
		p.ActorID = identity.ID
	}
	return p
}
