package reminder

type ReminderError string

func (e ReminderError) Error() string {
	return string(e)
}

const (
	ErrNilConfig   ReminderError = "config cannot be nil"
	ErrNilClock    ReminderError = "clock cannot be nil"
	ErrInvalidKey  ReminderError = "reminder key cannot be empty"
	ErrNilCallback ReminderError = "reminder callback cannot be nil"
	ErrStopped     ReminderError = "reminder service has been stopped"
)
