package endpoint

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/ariebrainware/clinic-management/auth"
	"github.com/ariebrainware/clinic-management/model"
	"github.com/ariebrainware/clinic-management/util"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AddAdminRequest struct {
	principalFields
	Role     string `form:"role" json:"role" example:"superuser"`
	IsActive Flag   `form:"is_active" json:"is_active" swaggertype:"boolean"`
}

// Flag is a boolean form value: true/false, 1/0 or a checkbox "on".
type Flag bool

func parseFlag(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "0", "false", "off", "no":
		return false, nil
	case "1", "true", "on", "yes":
		return true, nil
	}
	return false, fmt.Errorf("invalid boolean %q", s)
}

// UnmarshalParam implements binding.BindUnmarshaler for form input.
func (f *Flag) UnmarshalParam(param string) error {
	v, err := parseFlag(param)
	if err != nil {
		return err
	}
	*f = Flag(v)
	return nil
}

func (f *Flag) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	if v == nil {
		*f = false
		return nil
	}
	return f.UnmarshalParam(fmt.Sprint(v))
}

var adminEditFields = []string{"name", "email", "role", "phone", "is_active"}

func listAdmins(db *gorm.DB) ([]model.Admin, error) {
	var admins []model.Admin
	err := db.Order("id").Find(&admins).Error
	return admins, err
}

// ListAdmins godoc
// @Summary      List administrators
// @Tags         Administration
// @Produce      json
// @Security     SessionToken
// @Success      200 {object} util.APIResponse{data=[]model.Admin}
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /addAdmin [get]
// @Router       /manageAdmin [get]
func ListAdmins(c *gin.Context) {
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}
	admins, err := listAdmins(db)
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to retrieve admins", Err: err})
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Admins", Data: admins})
}

// AddAdmin godoc
// @Summary      Add an administrator
// @Tags         Administration
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Security     SessionToken
// @Param        request body AddAdminRequest true "Administrator"
// @Success      200 {object} util.APIResponse{data=model.Admin} "Admin added successfully!"
// @Failure      400 {object} util.APIResponse "All fields are required."
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /addAdmin [post]
func AddAdmin(c *gin.Context) {
	var req AddAdminRequest
	if !bindOrRespond(c, &req, "/addAdmin") {
		return
	}
	if !allPresent(req.Name, req.Email, req.Password, req.Role, req.Phone) {
		respondMissingFields(c, "/addAdmin")
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

	admin := model.Admin{
		Name:      util.NormalizeName(req.Name),
		Email:     strings.TrimSpace(req.Email),
		Password:  hashed,
		Role:      strings.TrimSpace(req.Role),
		Phone:     strings.TrimSpace(req.Phone),
		IsActive:  bool(req.IsActive),
		LastLogin: time.Now(),
	}
	reportEmailCollisions(c, db, admin.Email, model.KindAdministrator)
	if err := db.Create(&admin).Error; err != nil {
		respondManageError(c, "Admin", "/addAdmin", err)
		return
	}

	util.LogPrincipalCreated(changeParams(c, model.KindAdministrator, admin.ID, admin.Email))
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Admin added successfully!", Data: admin, Redirect: "/addAdmin"})
}

func editAdmin(db *gorm.DB, cmd manageCommand) (model.Admin, error) {
	active, err := parseFlag(cmd.Fields["is_active"])
	if err != nil {
		return model.Admin{}, fmt.Errorf("%w: %v", ErrInvalidCommand, err)
	}

	var admin model.Admin
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&admin, cmd.ID).Error; err != nil {
			return err
		}
		admin.Name = util.NormalizeName(cmd.Fields["name"])
		admin.Email = cmd.Fields["email"]
		admin.Role = cmd.Fields["role"]
		admin.Phone = cmd.Fields["phone"]
		admin.IsActive = active
		return tx.Save(&admin).Error
	})
	return admin, err
}

// deleteAdmin removes the admin permanently and ends its sessions.
func deleteAdmin(ctx context.Context, db *gorm.DB, id uint) error {
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var admin model.Admin
		if err := tx.First(&admin, id).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&admin).Error
	})
	if err != nil {
		return err
	}
	revokeSessions(ctx, db, auth.Identity{Kind: model.KindAdministrator, ID: id})
	return nil
}

// revokeSessions ends every session of a removed principal. The row is already
// gone, so a failure here is logged rather than returned.
func revokeSessions(ctx context.Context, db *gorm.DB, identity auth.Identity) {
	if err := auth.NewSessionStore(db, 0).RevokeAll(ctx, identity); err != nil {
		util.Logger().Warn().Err(err).Str("kind", string(identity.Kind)).Uint("id", identity.ID).Msg("failed to revoke sessions")
	}
}

// ManageAdmin godoc
// @Summary      Edit or delete an administrator
// @Description  Accepts {"action":"edit","id":3,"fields":{...}} or the form action=edit_3 / delete_3 with name_3, email_3, role_3, phone_3, is_active_3
// @Tags         Administration
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Security     SessionToken
// @Param        request body ManageCommandRequest true "Command"
// @Success      200 {object} util.APIResponse
// @Failure      400 {object} util.APIResponse "Invalid management command"
// @Failure      404 {object} util.APIResponse "Admin not found"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /manageAdmin [post]
func ManageAdmin(c *gin.Context) {
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}
	cmd, err := decodeManageCommand(c, adminEditFields)
	if err != nil {
		respondManageError(c, "Admin", "/manageAdmin", err)
		return
	}

	switch cmd.Action {
	case ActionEdit:
		admin, err := editAdmin(db, cmd)
		if err != nil {
			respondManageError(c, "Admin", "/manageAdmin", err)
			return
		}
		util.PrincipalEmailCacheDelete(model.KindAdministrator, admin.ID)
		util.LogPrincipalUpdated(changeParams(c, model.KindAdministrator, admin.ID, admin.Email))
		util.CallSuccessOK(c, util.APISuccessParams{Msg: "Admin details updated successfully!", Data: admin, Redirect: "/manageAdmin"})
	case ActionDelete:
		if err := deleteAdmin(c.Request.Context(), db, cmd.ID); err != nil {
			respondManageError(c, "Admin", "/manageAdmin", err)
			return
		}
		util.PrincipalEmailCacheDelete(model.KindAdministrator, cmd.ID)
		util.LogPrincipalDeleted(changeParams(c, model.KindAdministrator, cmd.ID, ""))
		util.CallSuccessOK(c, util.APISuccessParams{Msg: "Admin deleted successfully!", Redirect: "/manageAdmin"})
	}
}
