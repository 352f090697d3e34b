package model

import (
	"time"

	"github.com/iancoleman/orderedmap"

	"github.com/apodiktos/go-ergani-client/ergani/util"
)

// WorkCard is a single check-in or check-out event for an employee.
type WorkCard struct {
	EmployeeTaxIdentificationNumber string
	EmployeeLastName                string
	EmployeeFirstName               string
	MovementType                    WorkCardMovementType
	SubmissionDate                  time.Time
	MovementDatetime                time.Time
	LateDeclarationJustification    LateDeclarationJustification
}

func (w WorkCard) Serialize() (*orderedmap.OrderedMap, error) {
	movement, err := w.MovementType.WireValue()
	if err != nil {
		return nil, err
	}

	o := orderedmap.New()
	o.Set("f_afm", w.EmployeeTaxIdentificationNumber)
	o.Set("f_eponymo", w.EmployeeLastName)
	o.Set("f_onoma", w.EmployeeFirstName)
	o.Set("f_type", movement)
	o.Set("f_reference_date", referenceDate(w.SubmissionDate))
	o.Set("f_date", util.FormatDatetime(w.MovementDatetime))
	o.Set("f_aitiologia", w.LateDeclarationJustification.WireValue())
	return o, nil
}

// f_reference_date is the one date field Ergani wants in ISO form rather
// than DD/MM/YYYY.
func referenceDate(d time.Time) string {
	if d.IsZero() {
		return ""
	}
	return d.Format("2006-01-02")
}

// CompanyWorkCard aggregates work card events for one business branch.
// Entry order is preserved on the wire.
type CompanyWorkCard struct {
	EmployerTaxIdentificationNumber string
	BusinessBranchNumber            int
	Comments                        string
	CardDetails                     []WorkCard
}

func (c CompanyWorkCard) Serialize() (*orderedmap.OrderedMap, error) {
	details := make([]*orderedmap.OrderedMap, 0, len(c.CardDetails))
	for _, card := range c.CardDetails {
		m, err := card.Serialize()
		if err != nil {
			return nil, err
		}
		details = append(details, m)
	}

	inner := orderedmap.New()
	inner.Set("CardDetails", details)

	o := orderedmap.New()
	o.Set("f_afm_ergodoti", c.EmployerTaxIdentificationNumber)
	o.Set("f_aa", c.BusinessBranchNumber)
	o.Set("f_comments", c.Comments)
	o.Set("Details", inner)
	return o, nil
}
