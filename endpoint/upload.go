package endpoint

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/ariebrainware/clinic-management/model"
	"github.com/ariebrainware/clinic-management/util"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UploadFormData struct {
	PatientID   uint   `json:"patient_id" example:"1"`
	PatientName string `json:"patient_name" example:"John Smith"`
}

type PatientFilesData struct {
	Patient model.Patient  `json:"patient"`
	Files   []model.Upload `json:"files"`
}

// uploadMetadataColumns leaves the payload out of listings.
var uploadMetadataColumns = []string{"id", "created_at", "updated_at", "filename", "uploaded_at", "patient_id"}

// UploadForm godoc
// @Summary      Upload form
// @Tags         Upload
// @Produce      json
// @Param        patient_id path int true "Patient ID"
// @Success      200 {object} util.APIResponse{data=UploadFormData}
// @Failure      404 {object} util.APIResponse "Patient not found"
// @Router       /upload/{patient_id} [get]
func UploadForm(c *gin.Context) {
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}
	patient, ok := patientFromParamOrRespond(c, db)
	if !ok {
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Upload form",
		Data: UploadFormData{PatientID: patient.ID, PatientName: patient.Name},
	})
}

func readUploadOrRespond(c *gin.Context) (string, []byte, bool) {
	noFile := func(err error) {
		util.CallUserError(c, util.APIErrorParams{Msg: "No file uploaded!", Err: err})
	}

	fh, err := c.FormFile("file")
	if err != nil {
		noFile(err)
		return "", nil, false
	}
	f, err := fh.Open()
	if err != nil {
		noFile(err)
		return "", nil, false
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to read uploaded file", Err: err})
		return "", nil, false
	}
	if len(data) == 0 {
		noFile(fmt.Errorf("file %q is empty", fh.Filename))
		return "", nil, false
	}
	return fh.Filename, data, true
}

// UploadFile godoc
// @Summary      Upload a file
// @Description  Attach a file to the patient record. The content is stored as is.
// @Tags         Upload
// @Accept       multipart/form-data
// @Produce      json
// @Param        patient_id path int true "Patient ID"
// @Param        file formData file true "File to upload"
// @Success      200 {object} util.APIResponse{data=model.Upload}
// @Failure      400 {object} util.APIResponse "No file uploaded!"
// @Failure      404 {object} util.APIResponse "Patient not found"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /upload/{patient_id} [post]
func UploadFile(c *gin.Context) {
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}
	patient, ok := patientFromParamOrRespond(c, db)
	if !ok {
		return
	}
	filename, data, ok := readUploadOrRespond(c)
	if !ok {
		return
	}

	upload := model.Upload{Filename: filename, Data: data, PatientID: patient.ID}
	err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&upload).Error
	})
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to store uploaded file", Err: err})
		return
	}

	util.LogFileUploaded(changeParams(c, model.KindPatient, patient.ID, filename))
	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  fmt.Sprintf("File %s uploaded for patient %s", filename, patient.Name),
		Data: upload,
	})
}

// PatientFiles godoc
// @Summary      List patient files
// @Description  Metadata of the files uploaded for the patient, in upload order
// @Tags         Upload
// @Produce      json
// @Param        patient_id path int true "Patient ID"
// @Success      200 {object} util.APIResponse{data=PatientFilesData}
// @Failure      404 {object} util.APIResponse "Patient not found"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /patient_files/{patient_id} [get]
func PatientFiles(c *gin.Context) {
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}
	patient, ok := patientFromParamOrRespond(c, db)
	if !ok {
		return
	}

	files := []model.Upload{}
	err := db.Select(uploadMetadataColumns).
		Where("patient_id = ?", patient.ID).
		Order("id").
		Find(&files).Error
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to retrieve files", Err: err})
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Patient files", Data: PatientFilesData{Patient: patient, Files: files}})
}

// attachmentDisposition builds a Content-Disposition header, using the RFC 5987
// filename* form for names that are not plain ASCII or contain quotes.
func attachmentDisposition(filename string) string {
	ascii := true
	for _, r := range filename {
		if r > 127 || r == '"' || r == '\\' {
			ascii = false
			break
		}
	}
	if ascii {
		return `attachment; filename="` + filename + `"`
	}
	return `attachment; filename*=UTF-8''` + strings.ReplaceAll(url.QueryEscape(filename), "+", "%20")
}

// DownloadFile godoc
// @Summary      Download a file
// @Description  The stored bytes of an upload, served as an attachment under its original name
// @Tags         Upload
// @Produce      octet-stream
// @Param        file_id path int true "Upload ID"
// @Success      200 {file} binary
// @Failure      404 {object} util.APIResponse "File not found"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /download/{file_id} [get]
func DownloadFile(c *gin.Context) {
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "file_id", "File not found")
	if !ok {
		return
	}

	var upload model.Upload
	if !firstOrRespond(c, db, &upload, id, "File not found", "") {
		return
	}

	util.LogFileDownloaded(changeParams(c, model.KindPatient, upload.PatientID, upload.Filename))
	c.Header("Content-Disposition", attachmentDisposition(upload.Filename))
	c.Data(http.StatusOK, "application/octet-stream", upload.Data)
}
