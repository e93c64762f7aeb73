package report

import "strings"

// Result is the outcome of validating a draft: either valid, or a map
// from field name to a human-readable violation message covering every
// failed rule at once.
type Result struct {
	Valid  bool
	Errors map[string]string
}

const msgRequired = "Required"

// Validate checks the whole draft against the conditional schema. Every
// rule is evaluated — no short-circuit on the first failure — and each
// conditional rule reads its trigger field from the same draft snapshot.
// Fields whose trigger condition does not hold are exempt: their draft
// values are ignored entirely, not validated as optional.
func Validate(d *Draft) Result {
	errs := make(map[string]string)

	requireText(errs, "SerialReportNumber", d.SerialReportNumber)
	requireText(errs, "Date", d.Date)
	requireText(errs, "Customer", d.Customer)
	requireText(errs, "timeIn", d.TimeIn)
	requireText(errs, "timeOut", d.TimeOut)
	requireText(errs, "Quotation", d.Quotation)
	requireText(errs, "PurchaseOrder", d.PurchaseOrder)
	requireText(errs, "Inventory", d.Inventory)
	requireText(errs, "Model", d.Model)
	requireText(errs, "SerialNumber", d.SerialNumber)
	requireText(errs, "description", d.Description)
	requireText(errs, "concernName", d.ConcernName)
	requireText(errs, "customerdesignation", d.CustomerDesignation)
	requireText(errs, "customerPhoneNumber", d.CustomerPhoneNumber)

	// Machine variant: resolve the variant first, then validate only the
	// sub-fields that variant activates.
	switch {
	case d.MachineType == "":
		errs["MachineType"] = msgRequired
	case !d.MachineType.IsValid():
		errs["MachineType"] = "Invalid machine type"
	case d.MachineType == MachineOther:
		if strings.TrimSpace(d.OtherMachineType) == "" {
			errs["otherMachineType"] = "Specify other machine type"
		}
	case d.MachineType == MachineTTO:
		if strings.TrimSpace(d.HeadLife) == "" {
			errs["headLife"] = "Head life is required for TTO"
		}
	case d.MachineType == MachineCIJ:
		requireText(errs, "powerONtime", d.PowerOnTime)
		requireText(errs, "JetRunningTime", d.JetRunningTime)
		requireText(errs, "INKtype", d.InkType)
		requireText(errs, "SolventType", d.SolventType)
	}

	// Service variant
	switch {
	case d.ServiceType == "":
		errs["ServiceType"] = msgRequired
	case !d.ServiceType.IsValid():
		errs["ServiceType"] = "Invalid service type"
	case d.ServiceType == ServiceOther:
		if strings.TrimSpace(d.OtherServiceType) == "" {
			errs["otherServiceType"] = "Specify service type"
		}
	case d.ServiceType == ServiceNewInstallation:
		requireText(errs, "Unicode", d.Unicode)
		requireText(errs, "Configurationcode", d.ConfigurationCode)
	}

	// Job completion variant
	switch {
	case d.JobCompleted == "":
		errs["JobCompleted"] = msgRequired
	case !d.JobCompleted.IsValid():
		errs["JobCompleted"] = "Invalid value"
	case d.JobCompleted == JobCompletedNo:
		if strings.TrimSpace(d.JobCompleteReason) == "" {
			errs["JobcompleteReason"] = "Required when not completed"
		}
	}

	// Duplicate ids are allowed; only the minimum count is enforced.
	if len(d.Spare) == 0 {
		errs["spare"] = "Select at least one spare part"
	}

	// Presence only at this layer; the format gate runs later, so a draft
	// can pass here and still be rejected before upload.
	if d.ServiceReportPicture == nil {
		errs["serviceReportPicture"] = "Service report image is required"
	}
	if d.DeliveryNotePicture == nil {
		errs["deliveryNotePicture"] = "Delivery note image is required"
	}

	return Result{Valid: len(errs) == 0, Errors: errs}
}

func requireText(errs map[string]string, field, value string) {
	if strings.TrimSpace(value) == "" {
		errs[field] = msgRequired
	}
}
