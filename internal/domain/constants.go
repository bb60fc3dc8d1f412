package domain

// Business validation constants
const (
	MaxTitleLength              = 150
	MaxLocationLength           = 200
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MinEventCapacity            = 1
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// AllowedSlotMinutes перечисляет допустимые длительности слота.
// Админ-панель предлагает только эти значения.
var AllowedSlotMinutes = []int{15, 20, 30, 45, 60}

// IsAllowedSlotMinutes reports whether d is a valid slot duration.
func IsAllowedSlotMinutes(d int) bool {
	for _, allowed := range AllowedSlotMinutes {
		if d == allowed {
			return true
		}
	}
	return false
}

// ValidEventTypes список поддерживаемых типов событий
var ValidEventTypes = []EventType{
	TypeInterview,
	TypeDefense,
	TypeWorkshop,
	TypeSeminar,
	TypeConference,
	TypeInfoSession,
	TypeOther,
}

// IsValidEventType reports whether t is a supported event type.
func IsValidEventType(t EventType) bool {
	for _, valid := range ValidEventTypes {
		if t == valid {
			return true
		}
	}
	return false
}

// ValidEventStatuses список статусов жизненного цикла события
var ValidEventStatuses = []EventStatus{
	EventStatusDraft,
	EventStatusPublished,
	EventStatusOngoing,
	EventStatusCompleted,
	EventStatusCancelled,
}

// IsValidEventStatus reports whether s is a supported event status.
func IsValidEventStatus(s EventStatus) bool {
	for _, valid := range ValidEventStatuses {
		if s == valid {
			return true
		}
	}
	return false
}

// IsValidCapacityType reports whether c is a supported capacity type.
func IsValidCapacityType(c CapacityType) bool {
	return c == CapacitySingle || c == CapacityMultiple || c == CapacityUnlimited
}
