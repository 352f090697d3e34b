package model

import "fmt"

// ValidationError reports a domain value that cannot be mapped onto an
// Ergani wire token.
type ValidationError struct {
	Field string
	Value string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid value %q for %s", e.Value, e.Field)
}

type WorkCardMovementType string

const (
	Arrival   WorkCardMovementType = "ARRIVAL"
	Departure WorkCardMovementType = "DEPARTURE"
)

func (m WorkCardMovementType) WireValue() (string, error) {
	switch m {
	case Arrival:
		return "0", nil
	case Departure:
		return "1", nil
	}
	return "", &ValidationError{Field: "work_card_movement_type", Value: string(m)}
}

type LateDeclarationJustification string

const (
	PowerOutage                LateDeclarationJustification = "POWER_OUTAGE"
	EmployerSystemsUnavailable LateDeclarationJustification = "EMPLOYER_SYSTEMS_UNAVAILABLE"
	ErganiSystemsUnavailable   LateDeclarationJustification = "ERGANI_SYSTEMS_UNAVAILABLE"
)

// WireValue maps the known late-declaration justifications to their codes.
// Unknown values pass through unchanged: Ergani accepts free-form codes on
// this field, so the mapping is deliberately not strict.
func (j LateDeclarationJustification) WireValue() string {
	switch j {
	case PowerOutage:
		return "001"
	case EmployerSystemsUnavailable:
		return "002"
	case ErganiSystemsUnavailable:
		return "003"
	}
	return string(j)
}

type OvertimeJustification string

const (
	AccidentPreventionOrDamageRestoration OvertimeJustification = "ACCIDENT_PREVENTION_OR_DAMAGE_RESTORATION"
	UrgentSeasonalTasks                   OvertimeJustification = "URGENT_SEASONAL_TASKS"
	ExceptionalWorkload                   OvertimeJustification = "EXCEPTIONAL_WORKLOAD"
	SupplementaryTasks                    OvertimeJustification = "SUPPLEMENTARY_TASKS"
	LostHoursSuddenCauses                 OvertimeJustification = "LOST_HOURS_SUDDEN_CAUSES"
	LostHoursOfficialHolidays             OvertimeJustification = "LOST_HOURS_OFFICIAL_HOLIDAYS"
	LostHoursWeatherConditions            OvertimeJustification = "LOST_HOURS_WEATHER_CONDITIONS"
	EmergencyClosureDay                   OvertimeJustification = "EMERGENCY_CLOSURE_DAY"
	NonWorkdayTasks                       OvertimeJustification = "NON_WORKDAY_TASKS"
)

func (j OvertimeJustification) WireValue() (string, error) {
	switch j {
	case AccidentPreventionOrDamageRestoration:
		return "001", nil
	case UrgentSeasonalTasks:
		return "002", nil
	case ExceptionalWorkload:
		return "003", nil
	case SupplementaryTasks:
		return "004", nil
	case LostHoursSuddenCauses:
		return "005", nil
	case LostHoursOfficialHolidays:
		return "006", nil
	case LostHoursWeatherConditions:
		return "007", nil
	case EmergencyClosureDay:
		return "008", nil
	case NonWorkdayTasks:
		return "009", nil
	}
	return "", &ValidationError{Field: "overtime_justification", Value: string(j)}
}

type ScheduleWorkType string

const (
	WorkFromOffice ScheduleWorkType = "WORK_FROM_OFFICE"
	WorkFromHome   ScheduleWorkType = "WORK_FROM_HOME"
	RestDay        ScheduleWorkType = "REST_DAY"
	Absent         ScheduleWorkType = "ABSENT"
)

func (w ScheduleWorkType) WireValue() (string, error) {
	switch w {
	case WorkFromOffice:
		return "ΕΡΓ", nil
	case WorkFromHome:
		return "ΤΗΛ", nil
	case RestDay:
		return "ΑΝ", nil
	case Absent:
		return "ΜΕ", nil
	}
	return "", &ValidationError{Field: "work_type", Value: string(w)}
}

func cancellationValue(cancellation bool) string {
	if cancellation {
		return "1"
	}
	return "0"
}
