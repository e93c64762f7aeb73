package report

import (
	"github.com/vexr-systems/fieldserve/internal/asset"
	"github.com/vexr-systems/fieldserve/internal/session"
)

// MachineType is the closed set of machine categories a report covers
type MachineType string

const (
	MachineCIJ     MachineType = "CIJ"
	MachineLaser   MachineType = "LASER"
	MachineTTO     MachineType = "TTO"
	MachinePallet  MachineType = "PALLET"
	MachineTapping MachineType = "TAPPING"
	MachineScale   MachineType = "SCALE"
	MachineOther   MachineType = "OTHER"
)

var validMachineTypes = map[MachineType]bool{
	MachineCIJ:     true,
	MachineLaser:   true,
	MachineTTO:     true,
	MachinePallet:  true,
	MachineTapping: true,
	MachineScale:   true,
	MachineOther:   true,
}

// IsValid returns true if the machine type is in the closed set.
// The empty string is the form's placeholder state and is not valid.
func (m MachineType) IsValid() bool {
	return validMachineTypes[m]
}

// String returns the string representation of the machine type
func (m MachineType) String() string {
	return string(m)
}

// ServiceType is the closed set of service-call categories
type ServiceType string

const (
	ServiceNewInstallation    ServiceType = "NEW_INSTALLATION"
	ServiceDemo               ServiceType = "DEMO"
	ServiceCall               ServiceType = "SERVICE_CALL"
	ServiceAMC                ServiceType = "AMC"
	ServiceWarranty           ServiceType = "WARRANTY"
	ServiceFiltersReplacement ServiceType = "FILTERS_REPLACMENT"
	ServiceOther              ServiceType = "OTHER"
)

var validServiceTypes = map[ServiceType]bool{
	ServiceNewInstallation:    true,
	ServiceDemo:               true,
	ServiceCall:               true,
	ServiceAMC:                true,
	ServiceWarranty:           true,
	ServiceFiltersReplacement: true,
	ServiceOther:              true,
}

// IsValid returns true if the service type is in the closed set
func (s ServiceType) IsValid() bool {
	return validServiceTypes[s]
}

// String returns the string representation of the service type
func (s ServiceType) String() string {
	return string(s)
}

// JobStatus answers "Job Completed?" on the form
type JobStatus string

const (
	JobCompletedYes JobStatus = "yes"
	JobCompletedNo  JobStatus = "no"
)

// IsValid returns true if the status is one of yes/no
func (j JobStatus) IsValid() bool {
	return j == JobCompletedYes || j == JobCompletedNo
}

// Draft is the in-progress service report form state. All fields are
// optional at the type level; requiredness — including the conditional
// rules that hang off MachineType, ServiceType and JobCompleted — is
// enforced by the validation schema, not the type system.
type Draft struct {
	SerialReportNumber string `json:"SerialReportNumber"`
	Date               string `json:"Date"`
	Customer           string `json:"Customer"`
	TimeIn             string `json:"timeIn"`
	TimeOut            string `json:"timeOut"`
	Quotation          string `json:"Quotation"`
	PurchaseOrder      string `json:"PurchaseOrder"`
	Inventory          string `json:"Inventory"`

	MachineType      MachineType `json:"MachineType"`
	OtherMachineType string      `json:"otherMachineType"`
	HeadLife         string      `json:"headLife"`
	PowerOnTime      string      `json:"powerONtime"`
	JetRunningTime   string      `json:"JetRunningTime"`
	InkType          string      `json:"INKtype"`
	SolventType      string      `json:"SolventType"`
	ServiceDueDate   string      `json:"ServiceDueDate"`

	Model        string `json:"Model"`
	SerialNumber string `json:"SerialNumber"`

	ServiceType       ServiceType `json:"ServiceType"`
	OtherServiceType  string      `json:"otherServiceType"`
	Unicode           string      `json:"Unicode"`
	ConfigurationCode string      `json:"Configurationcode"`

	Description       string    `json:"description"`
	JobCompleted      JobStatus `json:"JobCompleted"`
	JobCompleteReason string    `json:"JobcompleteReason"`

	ConcernName         string `json:"concernName"`
	CustomerDesignation string `json:"customerdesignation"`
	CustomerPhoneNumber string `json:"customerPhoneNumber"`

	Spare []string `json:"spare"`

	// Local file references; replaced by asset URLs in the payload.
	ServiceReportPicture *asset.File `json:"-"`
	DeliveryNotePicture  *asset.File `json:"-"`
}

// Reset clears the draft back to its default empty shape
func (d *Draft) Reset() {
	*d = Draft{}
}

// Payload is the server-bound report: the draft with image fields
// replaced by asset URLs, ServiceDueDate normalized to null when empty,
// and the session's region and user identifiers injected. Conditional
// fields whose trigger does not hold are stripped, not just blanked.
// Constructed once per submit attempt and not mutated afterwards.
type Payload struct {
	SerialReportNumber string `json:"SerialReportNumber"`
	Date               string `json:"Date"`
	Customer           string `json:"Customer"`
	TimeIn             string `json:"timeIn"`
	TimeOut            string `json:"timeOut"`
	Quotation          string `json:"Quotation"`
	PurchaseOrder      string `json:"PurchaseOrder"`
	Inventory          string `json:"Inventory"`

	MachineType      MachineType `json:"MachineType"`
	OtherMachineType string      `json:"otherMachineType,omitempty"`
	HeadLife         string      `json:"headLife,omitempty"`
	PowerOnTime      string      `json:"powerONtime,omitempty"`
	JetRunningTime   string      `json:"JetRunningTime,omitempty"`
	InkType          string      `json:"INKtype,omitempty"`
	SolventType      string      `json:"SolventType,omitempty"`
	ServiceDueDate   *string     `json:"ServiceDueDate"`

	Model        string `json:"Model"`
	SerialNumber string `json:"SerialNumber"`

	ServiceType       ServiceType `json:"ServiceType"`
	OtherServiceType  string      `json:"otherServiceType,omitempty"`
	Unicode           string      `json:"Unicode,omitempty"`
	ConfigurationCode string      `json:"Configurationcode,omitempty"`

	Description       string    `json:"description"`
	JobCompleted      JobStatus `json:"JobCompleted"`
	JobCompleteReason string    `json:"JobcompleteReason,omitempty"`

	ConcernName         string `json:"concernName"`
	CustomerDesignation string `json:"customerdesignation"`
	CustomerPhoneNumber string `json:"customerPhoneNumber"`

	Spare []string `json:"spare"`

	ServiceReportPicture string `json:"serviceReportPicture"`
	DeliveryNotePicture  string `json:"deliveryNotePicture"`

	Region       string `json:"region"`
	EngineerName string `json:"engineerName"`
}

// BuildPayload assembles the server-bound payload from a validated draft,
// the session identity and the two uploaded asset URLs. Fields gated on a
// machine/service/job variant are copied only when their trigger holds,
// whatever the draft has in them.
func BuildPayload(d *Draft, sess *session.Session, reportURL, deliveryURL string) *Payload {
	p := &Payload{
		SerialReportNumber:  d.SerialReportNumber,
		Date:                d.Date,
		Customer:            d.Customer,
		TimeIn:              d.TimeIn,
		TimeOut:             d.TimeOut,
		Quotation:           d.Quotation,
		PurchaseOrder:       d.PurchaseOrder,
		Inventory:           d.Inventory,
		MachineType:         d.MachineType,
		Model:               d.Model,
		SerialNumber:        d.SerialNumber,
		ServiceType:         d.ServiceType,
		Description:         d.Description,
		JobCompleted:        d.JobCompleted,
		ConcernName:         d.ConcernName,
		CustomerDesignation: d.CustomerDesignation,
		CustomerPhoneNumber: d.CustomerPhoneNumber,
		Spare:               append([]string(nil), d.Spare...),

		ServiceReportPicture: reportURL,
		DeliveryNotePicture:  deliveryURL,

		Region:       sess.RegionID,
		EngineerName: sess.UserID,
	}

	switch d.MachineType {
	case MachineOther:
		p.OtherMachineType = d.OtherMachineType
	case MachineTTO:
		p.HeadLife = d.HeadLife
	case MachineCIJ:
		p.PowerOnTime = d.PowerOnTime
		p.JetRunningTime = d.JetRunningTime
		p.InkType = d.InkType
		p.SolventType = d.SolventType
	}

	switch d.ServiceType {
	case ServiceOther:
		p.OtherServiceType = d.OtherServiceType
	case ServiceNewInstallation:
		p.Unicode = d.Unicode
		p.ConfigurationCode = d.ConfigurationCode
	}

	if d.JobCompleted == JobCompletedNo {
		p.JobCompleteReason = d.JobCompleteReason
	}

	if d.ServiceDueDate != "" {
		due := d.ServiceDueDate
		p.ServiceDueDate = &due
	}

	return p
}
