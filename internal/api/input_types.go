package api

type credentialsInput struct {
	Name     string `json:"name" form:"name"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type registerInput struct {
	Name     string `json:"name" form:"name"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
	Role     string `json:"role" form:"role"`
}

type habitPayload struct {
	Name         string `json:"name" form:"name"`
	Description  string `json:"description" form:"description"`
	Color        string `json:"color" form:"color"`
	Frequency    string `json:"frequency" form:"frequency"`
	TimeOfDay    string `json:"timeOfDay" form:"timeOfDay"`
	Reminder     bool   `json:"reminder" form:"reminder"`
	ReminderTime string `json:"reminderTime" form:"reminderTime"`
}

type recordHabitEntry struct {
	ID        uint  `json:"id"`
	Completed *bool `json:"completed"`
}

type recordPayload struct {
	Date   string             `json:"date"`
	Habits []recordHabitEntry `json:"habits"`
}
