package endpoint

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ariebrainware/clinic-management/util"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"gorm.io/gorm"
)

// ErrInvalidCommand is returned for management requests that do not decode to an edit or a delete.
var ErrInvalidCommand = errors.New("invalid management command")

type ManageAction string

const (
	ActionEdit   ManageAction = "edit"
	ActionDelete ManageAction = "delete"
)

// manageCommand is one edit or delete of a managed row. For an edit, Fields
// holds a value for every mutable column of the resource.
type manageCommand struct {
	Action ManageAction
	ID     uint
	Fields map[string]string
}

// ManageCommandRequest is the JSON form of a management command.
type ManageCommandRequest struct {
	Action ManageAction           `json:"action" example:"edit"`
	ID     uint                   `json:"id" example:"3"`
	Fields map[string]interface{} `json:"fields"`
}

// decodeManageCommand accepts either a JSON ManageCommandRequest or the form
// encoding action=edit_<id> with per-row fields named <field>_<id>.
func decodeManageCommand(c *gin.Context, editable []string) (manageCommand, error) {
	var cmd manageCommand
	var err error
	if c.ContentType() == binding.MIMEJSON {
		cmd, err = decodeJSONCommand(c)
	} else {
		cmd, err = decodeFormCommand(c, editable)
	}
	if err != nil {
		return manageCommand{}, err
	}

	if cmd.Action == ActionEdit {
		for _, field := range editable {
			if _, ok := cmd.Fields[field]; !ok {
				return manageCommand{}, fmt.Errorf("%w: missing field %q", ErrInvalidCommand, field)
			}
		}
	}
	return cmd, nil
}

func decodeJSONCommand(c *gin.Context) (manageCommand, error) {
	var req ManageCommandRequest
	dec := json.NewDecoder(c.Request.Body)
	dec.UseNumber()
	if err := dec.Decode(&req); err != nil {
		return manageCommand{}, fmt.Errorf("%w: %v", ErrInvalidCommand, err)
	}
	if (req.Action != ActionEdit && req.Action != ActionDelete) || req.ID == 0 {
		return manageCommand{}, fmt.Errorf("%w: action %q id %d", ErrInvalidCommand, req.Action, req.ID)
	}

	fields := make(map[string]string, len(req.Fields))
	for k, v := range req.Fields {
		if v == nil {
			fields[k] = ""
			continue
		}
		fields[k] = fmt.Sprint(v)
	}
	return manageCommand{Action: req.Action, ID: req.ID, Fields: fields}, nil
}

func decodeFormCommand(c *gin.Context, editable []string) (manageCommand, error) {
	tag := c.PostForm("action")
	action, rawID, found := strings.Cut(tag, "_")
	if !found {
		return manageCommand{}, fmt.Errorf("%w: %q", ErrInvalidCommand, tag)
	}
	id, err := strconv.ParseUint(rawID, 10, 64)
	if err != nil || id == 0 {
		return manageCommand{}, fmt.Errorf("%w: %q", ErrInvalidCommand, tag)
	}

	cmd := manageCommand{Action: ManageAction(action), ID: uint(id), Fields: map[string]string{}}
	switch cmd.Action {
	case ActionEdit:
		for _, field := range editable {
			if v, ok := c.GetPostForm(fmt.Sprintf("%s_%d", field, id)); ok {
				cmd.Fields[field] = strings.TrimSpace(v)
			}
		}
	case ActionDelete:
	default:
		return manageCommand{}, fmt.Errorf("%w: %q", ErrInvalidCommand, tag)
	}
	return cmd, nil
}

// respondManageError maps the errors of add and manage workflows to responses.
func respondManageError(c *gin.Context, resource, redirect string, err error) {
	switch {
	case errors.Is(err, ErrInvalidCommand):
		util.CallUserError(c, util.APIErrorParams{Msg: "Invalid management command", Err: err, Redirect: redirect})
	case errors.Is(err, gorm.ErrRecordNotFound):
		util.CallErrorNotFound(c, util.APIErrorParams{Msg: resource + " not found", Err: err, Redirect: redirect})
	case errors.Is(err, gorm.ErrDuplicatedKey):
		util.CallUserError(c, util.APIErrorParams{Msg: "Email or phone already in use", Err: err, Redirect: redirect})
	default:
		util.Logger().Error().Err(err).Str("resource", resource).Msg("management change rolled back")
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to update " + strings.ToLower(resource), Err: err, Redirect: redirect})
	}
}

type principalFields struct {
	Name     string `form:"name" json:"name"`
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password"`
	Phone    string `form:"phone" json:"phone"`
}

// allPresent reports whether every value is non-blank.
func allPresent(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}
	return true
}

func respondMissingFields(c *gin.Context, redirect string) {
	util.CallUserError(c, util.APIErrorParams{
		Msg:      "All fields are required.",
		Err:      fmt.Errorf("missing required fields"),
		Redirect: redirect,
	})
}
