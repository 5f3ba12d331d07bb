package session

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/koildeeee/HospitalManagerApp/internal/domain/identity"
	"github.com/koildeeee/HospitalManagerApp/internal/domain/inbox"
)

//go:embed seed.yaml
var seedYAML []byte

type seedData struct {
	Doctors   []identity.Doctor `yaml:"doctors"`
	Inquiries []inbox.Inquiry   `yaml:"inquiries"`
}

// loadSeed parses the built-in reference data. Dates are kept as the text
// written in the file.
func loadSeed(data []byte) (*identity.DoctorList, *inbox.InquiryList, error) {
	var seed seedData
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, nil, fmt.Errorf("parse seed data: %w", err)
	}

	doctors := identity.NewDoctorList()
	for i := range seed.Doctors {
		doctors.Add(&seed.Doctors[i])
	}
	inquiries := inbox.NewInquiryList()
	for i := range seed.Inquiries {
		inquiries.Add(&seed.Inquiries[i])
	}
	return doctors, inquiries, nil
}
