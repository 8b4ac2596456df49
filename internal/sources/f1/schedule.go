package f1

// Event is one session in the static race calendar.
type Event struct {
	Date    string // YYYY-MM-DD
	Time    string // HH:MM local
	Name    string // "British GP – Qualifying"
	Channel string
}

// schedule2025 is the remainder of the 2025 calendar, sessions the Irish
// audience can actually watch. Refreshed by hand between seasons.
var schedule2025 = []Event{
	{Date: "2025-07-05", Time: "15:00", Name: "British GP – Qualifying", Channel: "Sky Sports F1 / Channel 4"},
	{Date: "2025-07-06", Time: "15:00", Name: "British GP – Race", Channel: "Sky Sports F1 / Channel 4"},
	{Date: "2025-07-26", Time: "11:00", Name: "Belgian GP – Sprint", Channel: "Sky Sports F1"},
	{Date: "2025-07-26", Time: "15:00", Name: "Belgian GP – Qualifying", Channel: "Sky Sports F1"},
	{Date: "2025-07-27", Time: "14:00", Name: "Belgian GP – Race", Channel: "Sky Sports F1"},
	{Date: "2025-08-02", Time: "15:00", Name: "Hungarian GP – Qualifying", Channel: "Sky Sports F1"},
	{Date: "2025-08-03", Time: "14:00", Name: "Hungarian GP – Race", Channel: "Sky Sports F1"},
	{Date: "2025-08-30", Time: "15:00", Name: "Dutch GP – Qualifying", Channel: "Sky Sports F1"},
	{Date: "2025-08-31", Time: "14:00", Name: "Dutch GP – Race", Channel: "Sky Sports F1"},
	{Date: "2025-09-06", Time: "15:00", Name: "Italian GP – Qualifying", Channel: "Sky Sports F1"},
	{Date: "2025-09-07", Time: "14:00", Name: "Italian GP – Race", Channel: "Sky Sports F1"},
	{Date: "2025-09-20", Time: "13:00", Name: "Azerbaijan GP – Qualifying", Channel: "Sky Sports F1"},
	{Date: "2025-09-21", Time: "12:00", Name: "Azerbaijan GP – Race", Channel: "Sky Sports F1"},
	{Date: "2025-10-04", Time: "14:00", Name: "Singapore GP – Qualifying", Channel: "Sky Sports F1"},
	{Date: "2025-10-05", Time: "13:00", Name: "Singapore GP – Race", Channel: "Sky Sports F1"},
	{Date: "2025-10-18", Time: "18:00", Name: "United States GP – Sprint", Channel: "Sky Sports F1"},
	{Date: "2025-10-18", Time: "22:00", Name: "United States GP – Qualifying", Channel: "Sky Sports F1"},
	{Date: "2025-10-19", Time: "20:00", Name: "United States GP – Race", Channel: "Sky Sports F1"},
	{Date: "2025-10-25", Time: "18:00", Name: "Mexico City GP – Qualifying", Channel: "Sky Sports F1"},
	{Date: "2025-10-26", Time: "20:00", Name: "Mexico City GP – Race", Channel: "Sky Sports F1"},
	{Date: "2025-11-08", Time: "14:00", Name: "São Paulo GP – Sprint", Channel: "Sky Sports F1"},
	{Date: "2025-11-08", Time: "18:00", Name: "São Paulo GP – Qualifying", Channel: "Sky Sports F1"},
	{Date: "2025-11-09", Time: "17:00", Name: "São Paulo GP – Race", Channel: "Sky Sports F1"},
	{Date: "2025-11-29", Time: "14:00", Name: "Qatar GP – Sprint", Channel: "Sky Sports F1"},
	{Date: "2025-11-29", Time: "18:00", Name: "Qatar GP – Qualifying", Channel: "Sky Sports F1"},
	{Date: "2025-11-30", Time: "16:00", Name: "Qatar GP – Race", Channel: "Sky Sports F1"},
	{Date: "2025-12-06", Time: "14:00", Name: "Abu Dhabi GP – Qualifying", Channel: "Sky Sports F1"},
	{Date: "2025-12-07", Time: "13:00", Name: "Abu Dhabi GP – Race", Channel: "Sky Sports F1"},
}
