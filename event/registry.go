package event

import "strings"

var (
	nameToType = make(map[string]EventType)
	typeToName = make(map[EventType]string)
)

func init() {
	RegisterType("EventGenerateRequest", EventGenerateRequest)
	RegisterType("EventGenerate", EventGenerate)
	RegisterType("EventUpdated", EventUpdated)
}

// RegisterType maps a string name to an EventType
func RegisterType(name string, et EventType) {
	nameToType[name] = et
	typeToName[et] = name
}

// GetEventType returns the EventType for a given name, case-insensitive
func GetEventType(name string) (EventType, bool) {
	for n, et := range nameToType {
		if strings.EqualFold(n, name) {
			return et, true
		}
	}
	return 0, false
}

// GetEventName returns the string name for an EventType
func GetEventName(et EventType) string {
	if name, ok := typeToName[et]; ok {
		return name
	}
	return "EventUnknown"
}

func (et EventType) String() string {
	return GetEventName(et)
}
