package model

import (
	"time"

	"github.com/iancoleman/orderedmap"

	"github.com/apodiktos/go-ergani-client/ergani/util"
)

// WorkdayDetails describes one segment of an employee's workday.
type WorkdayDetails struct {
	WorkType  ScheduleWorkType
	StartTime time.Time
	EndTime   time.Time
}

func (w WorkdayDetails) Serialize() (*orderedmap.OrderedMap, error) {
	workType, err := w.WorkType.WireValue()
	if err != nil {
		return nil, err
	}

	o := orderedmap.New()
	o.Set("f_type", workType)
	o.Set("f_from", util.FormatTime(w.StartTime))
	o.Set("f_to", util.FormatTime(w.EndTime))
	return o, nil
}

// EmployeeDailySchedule is one employee's schedule for a concrete date.
type EmployeeDailySchedule struct {
	EmployeeTaxIdentificationNumber string
	EmployeeLastName                string
	EmployeeFirstName               string
	ScheduleDate                    time.Time
	WorkdayDetails                  []WorkdayDetails
}

func (s EmployeeDailySchedule) Serialize() (*orderedmap.OrderedMap, error) {
	analytics, err := serializeWorkdays(s.WorkdayDetails)
	if err != nil {
		return nil, err
	}

	o := orderedmap.New()
	o.Set("f_afm", s.EmployeeTaxIdentificationNumber)
	o.Set("f_eponymo", s.EmployeeLastName)
	o.Set("f_onoma", s.EmployeeFirstName)
	o.Set("f_date", util.FormatDate(s.ScheduleDate))
	o.Set("ErgazomenosAnalytics", analytics)
	return o, nil
}

// EmployeeWeeklySchedule is one employee's schedule for a weekday. The wire
// format carries the day-of-week index derived from the date, not the date
// itself.
type EmployeeWeeklySchedule struct {
	EmployeeTaxIdentificationNumber string
	EmployeeLastName                string
	EmployeeFirstName               string
	ScheduleDate                    time.Time
	WorkdayDetails                  []WorkdayDetails
}

func (s EmployeeWeeklySchedule) Serialize() (*orderedmap.OrderedMap, error) {
	analytics, err := serializeWorkdays(s.WorkdayDetails)
	if err != nil {
		return nil, err
	}

	o := orderedmap.New()
	o.Set("f_afm", s.EmployeeTaxIdentificationNumber)
	o.Set("f_eponymo", s.EmployeeLastName)
	o.Set("f_onoma", s.EmployeeFirstName)
	if s.ScheduleDate.IsZero() {
		o.Set("f_day", "")
	} else {
		o.Set("f_day", util.DayOfWeek(s.ScheduleDate))
	}
	o.Set("ErgazomenosAnalytics", analytics)
	return o, nil
}

func serializeWorkdays(details []WorkdayDetails) (*orderedmap.OrderedMap, error) {
	serialized := make([]*orderedmap.OrderedMap, 0, len(details))
	for _, detail := range details {
		m, err := detail.Serialize()
		if err != nil {
			return nil, err
		}
		serialized = append(serialized, m)
	}

	analytics := orderedmap.New()
	analytics.Set("ErgazomenosWTOAnalytics", serialized)
	return analytics, nil
}

// CompanyDailySchedule aggregates daily schedules for one business branch.
type CompanyDailySchedule struct {
	BusinessBranchNumber int
	StartDate            time.Time
	EndDate              time.Time
	EmployeeSchedules    []EmployeeDailySchedule
	RelatedProtocolID    string
	RelatedProtocolDate  time.Time
	Comments             string
}

func (c CompanyDailySchedule) Serialize() (*orderedmap.OrderedMap, error) {
	schedules := make([]*orderedmap.OrderedMap, 0, len(c.EmployeeSchedules))
	for _, schedule := range c.EmployeeSchedules {
		m, err := schedule.Serialize()
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, m)
	}

	return serializeScheduleBatch(
		c.BusinessBranchNumber, c.RelatedProtocolID, c.RelatedProtocolDate,
		c.Comments, c.StartDate, c.EndDate, schedules), nil
}

// CompanyWeeklySchedule aggregates weekly schedules for one business
// branch over a date range.
type CompanyWeeklySchedule struct {
	BusinessBranchNumber int
	StartDate            time.Time
	EndDate              time.Time
	EmployeeSchedules    []EmployeeWeeklySchedule
	RelatedProtocolID    string
	RelatedProtocolDate  time.Time
	Comments             string
}

func (c CompanyWeeklySchedule) Serialize() (*orderedmap.OrderedMap, error) {
	schedules := make([]*orderedmap.OrderedMap, 0, len(c.EmployeeSchedules))
	for _, schedule := range c.EmployeeSchedules {
		m, err := schedule.Serialize()
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, m)
	}

	return serializeScheduleBatch(
		c.BusinessBranchNumber, c.RelatedProtocolID, c.RelatedProtocolDate,
		c.Comments, c.StartDate, c.EndDate, schedules), nil
}

func serializeScheduleBatch(branch int, protocol string, protocolDate time.Time,
	comments string, start, end time.Time, schedules []*orderedmap.OrderedMap) *orderedmap.OrderedMap {

	inner := orderedmap.New()
	inner.Set("ErgazomenoiWTO", schedules)

	o := orderedmap.New()
	o.Set("f_aa_pararthmatos", branch)
	o.Set("f_rel_protocol", protocol)
	o.Set("f_rel_date", util.FormatDate(protocolDate))
	o.Set("f_comments", comments)
	o.Set("f_from_date", util.FormatDate(start))
	o.Set("f_to_date", util.FormatDate(end))
	o.Set("Ergazomenoi", inner)
	return o
}
