package config

const (
	DefaultSpeed        = 0.1 // floors per second
	DefaultName         = "Elevator"
	DefaultBuildingName = "a building"
	DefaultVerbosity    = 2

	SecondsPerMinute = 60
	SecondsPerHour   = 3600

	LogTimeFormat = "15:04:05"
	Prompt        = "elevator> "
)
