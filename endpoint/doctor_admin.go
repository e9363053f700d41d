package endpoint

import (
	"context"
	"strings"

	"github.com/ariebrainware/clinic-management/auth"
	"github.com/ariebrainware/clinic-management/model"
	"github.com/ariebrainware/clinic-management/util"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AddDoctorRequest struct {
	principalFields
	Specialist string `form:"specialist" json:"specialist" example:"Cardiology"`
}

var doctorEditFields = []string{"name", "email", "phone", "specialist"}

// ListDoctors godoc
// @Summary      List doctors
// @Tags         Administration
// @Produce      json
// @Security     SessionToken
// @Success      200 {object} util.APIResponse{data=[]model.Doctor}
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /addDoctor [get]
// @Router       /manageDoctor [get]
func ListDoctors(c *gin.Context) {
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}
	var doctors []model.Doctor
	if err := db.Order("id").Find(&doctors).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to retrieve doctors", Err: err})
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Doctors", Data: doctors})
}

// AddDoctor godoc
// @Summary      Add a doctor
// @Tags         Administration
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Security     SessionToken
// @Param        request body AddDoctorRequest true "Doctor"
// @Success      200 {object} util.APIResponse{data=model.Doctor} "Doctor added successfully!"
// @Failure      400 {object} util.APIResponse "All fields are required."
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /addDoctor [post]
func AddDoctor(c *gin.Context) {
	var req AddDoctorRequest
	if !bindOrRespond(c, &req, "/addDoctor") {
		return
	}
	if !allPresent(req.Name, req.Email, req.Password, req.Phone, req.Specialist) {
		respondMissingFields(c, "/addDoctor")
		return
	}

	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}
	hashed, ok := hashPasswordOrRespond(c, req.Password)
	if !ok {
		return
	}

	doctor := model.Doctor{
		Name:       util.NormalizeName(req.Name),
		Email:      strings.TrimSpace(req.Email),
		Password:   hashed,
		Phone:      strings.TrimSpace(req.Phone),
		Specialist: strings.TrimSpace(req.Specialist),
	}
	reportEmailCollisions(c, db, doctor.Email, model.KindDoctor)
	if err := db.Create(&doctor).Error; err != nil {
		respondManageError(c, "Doctor", "/addDoctor", err)
		return
	}

	util.LogPrincipalCreated(changeParams(c, model.KindDoctor, doctor.ID, doctor.Email))
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Doctor added successfully!", Data: doctor, Redirect: "/addDoctor"})
}

func editDoctor(db *gorm.DB, cmd manageCommand) (model.Doctor, error) {
	var doctor model.Doctor
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&doctor, cmd.ID).Error; err != nil {
			return err
		}
		doctor.Name = util.NormalizeName(cmd.Fields["name"])
		doctor.Email = cmd.Fields["email"]
		doctor.Phone = cmd.Fields["phone"]
		doctor.Specialist = cmd.Fields["specialist"]
		return tx.Save(&doctor).Error
	})
	return doctor, err
}

// deleteDoctor removes the doctor permanently. Assigned patients are detached
// and the doctor's appointments are deleted with it.
func deleteDoctor(ctx context.Context, db *gorm.DB, id uint) error {
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var doctor model.Doctor
		if err := tx.First(&doctor, id).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.Patient{}).Where("doctor_id = ?", id).Update("doctor_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("doctor_id = ?", id).Delete(&model.Appointment{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&doctor).Error
	})
	if err != nil {
		return err
	}
	revokeSessions(ctx, db, auth.Identity{Kind: model.KindDoctor, ID: id})
	return nil
}

// ManageDoctor godoc
// @Summary      Edit or delete a doctor
// @Description  Accepts {"action":"edit","id":3,"fields":{...}} or the form action=edit_3 / delete_3 with name_3, email_3, phone_3, specialist_3
// @Tags         Administration
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Security     SessionToken
// @Param        request body ManageCommandRequest true "Command"
// @Success      200 {object} util.APIResponse
// @Failure      400 {object} util.APIResponse "Invalid management command"
// @Failure      404 {object} util.APIResponse "Doctor not found"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /manageDoctor [post]
func ManageDoctor(c *gin.Context) {
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}
	cmd, err := decodeManageCommand(c, doctorEditFields)
	if err != nil {
		respondManageError(c, "Doctor", "/manageDoctor", err)
		return
	}

	switch cmd.Action {
	case ActionEdit:
		doctor, err := editDoctor(db, cmd)
		if err != nil {
			respondManageError(c, "Doctor", "/manageDoctor", err)
			return
		}
		util.PrincipalEmailCacheDelete(model.KindDoctor, doctor.ID)
		util.LogPrincipalUpdated(changeParams(c, model.KindDoctor, doctor.ID, doctor.Email))
		util.CallSuccessOK(c, util.APISuccessParams{Msg: "Doctor information updated successfully!", Data: doctor, Redirect: "/manageDoctor"})
	case ActionDelete:
		if err := deleteDoctor(c.Request.Context(), db, cmd.ID); err != nil {
			respondManageError(c, "Doctor", "/manageDoctor", err)
			return
		}
		util.PrincipalEmailCacheDelete(model.KindDoctor, cmd.ID)
		util.LogPrincipalDeleted(changeParams(c, model.KindDoctor, cmd.ID, ""))
		util.CallSuccessOK(c, util.APISuccessParams{Msg: "Doctor deleted successfully!", Redirect: "/manageDoctor"})
	}
}
