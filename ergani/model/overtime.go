package model

import (
	"time"

	"github.com/go-faster/errors"
	"github.com/go-playground/validator/v10"
	"github.com/iancoleman/orderedmap"

	"github.com/apodiktos/go-ergani-client/ergani/util"
)

var validate = validator.New()

// Overtime is a single employee overtime declaration.
type Overtime struct {
	EmployeeTaxIdentificationNumber string
	EmployeeSocialSecurityNumber    string
	EmployeeLastName                string
	EmployeeFirstName               string
	Date                            time.Time
	StartTime                       time.Time
	EndTime                         time.Time
	Cancellation                    bool
	EmployeeProfessionCode          string
	Justification                   OvertimeJustification
	WeeklyWorkdaysNumber            int `validate:"oneof=5 6"`
	ASEEApproval                    string
}

func (o Overtime) Serialize() (*orderedmap.OrderedMap, error) {
	if err := validate.Struct(o); err != nil {
		return nil, errors.Wrap(err, "overtime entry")
	}

	reason, err := o.Justification.WireValue()
	if err != nil {
		return nil, err
	}

	m := orderedmap.New()
	m.Set("f_afm", o.EmployeeTaxIdentificationNumber)
	m.Set("f_amka", o.EmployeeSocialSecurityNumber)
	m.Set("f_eponymo", o.EmployeeLastName)
	m.Set("f_onoma", o.EmployeeFirstName)
	m.Set("f_date", util.FormatDate(o.Date))
	m.Set("f_from", util.FormatTime(o.StartTime))
	m.Set("f_to", util.FormatTime(o.EndTime))
	m.Set("f_cancellation", cancellationValue(o.Cancellation))
	m.Set("f_step", o.EmployeeProfessionCode)
	m.Set("f_reason", reason)
	m.Set("f_weekdates", o.WeeklyWorkdaysNumber)
	m.Set("f_asee", o.ASEEApproval)
	return m, nil
}

// CompanyOvertime aggregates overtime declarations for one business branch.
type CompanyOvertime struct {
	BusinessBranchNumber                       int
	SepeServiceCode                            string
	BusinessPrimaryActivityCode                string
	BusinessBranchActivityCode                 string
	KallikratisMunicipalCode                   string
	LegalRepresentativeTaxIdentificationNumber string
	EmployeeOvertimes                          []Overtime
	RelatedProtocolID                          string
	RelatedProtocolDate                        time.Time
	EmployerOrganization                       string
	BusinessSecondaryActivityCode1             string
	BusinessSecondaryActivityCode2             string
	BusinessSecondaryActivityCode3             string
	BusinessSecondaryActivityCode4             string
	Comments                                   string
}

func (c CompanyOvertime) Serialize() (*orderedmap.OrderedMap, error) {
	overtimes := make([]*orderedmap.OrderedMap, 0, len(c.EmployeeOvertimes))
	for _, overtime := range c.EmployeeOvertimes {
		m, err := overtime.Serialize()
		if err != nil {
			return nil, err
		}
		overtimes = append(overtimes, m)
	}

	inner := orderedmap.New()
	inner.Set("OvertimeErgazomenosDate", overtimes)

	o := orderedmap.New()
	o.Set("f_aa_pararthmatos", c.BusinessBranchNumber)
	o.Set("f_rel_protocol", c.RelatedProtocolID)
	o.Set("f_rel_date", util.FormatDate(c.RelatedProtocolDate))
	o.Set("f_ypiresia_sepe", c.SepeServiceCode)
	o.Set("f_ergodotikh_organwsh", c.EmployerOrganization)
	o.Set("f_kad_kyria", c.BusinessPrimaryActivityCode)
	o.Set("f_kad_deyt_1", c.BusinessSecondaryActivityCode1)
	o.Set("f_kad_deyt_2", c.BusinessSecondaryActivityCode2)
	o.Set("f_kad_deyt_3", c.BusinessSecondaryActivityCode3)
	o.Set("f_kad_deyt_4", c.BusinessSecondaryActivityCode4)
	o.Set("f_kad_pararthmatos", c.BusinessBranchActivityCode)
	o.Set("f_kallikratis_pararthmatos", c.KallikratisMunicipalCode)
	o.Set("f_comments", c.Comments)
	o.Set("f_afm_proswpoy", c.LegalRepresentativeTaxIdentificationNumber)
	o.Set("Ergazomenoi", inner)
	return o, nil
}
