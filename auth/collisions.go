package auth

import (
	"github.com/ariebrainware/clinic-management/model"
	"gorm.io/gorm"
)

var kindTables = []struct {
	kind  model.PrincipalKind
	model interface{}
}{
	{model.KindAdministrator, &model.Admin{}},
	{model.KindPatient, &model.Patient{}},
	{model.KindDoctor, &model.Doctor{}},
}

// EmailCollisions lists the principal kinds other than exclude that already use email.
// Emails are only unique per table, so a hit here is reported, not rejected.
func EmailCollisions(db *gorm.DB, email string, exclude model.PrincipalKind) ([]model.PrincipalKind, error) {
	var kinds []model.PrincipalKind
	for _, t := range kindTables {
		if t.kind == exclude {
			continue
		}
		var count int64
		if err := db.Model(t.model).Where("email = ?", email).Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			kinds = append(kinds, t.kind)
		}
	}
	return kinds, nil
}
