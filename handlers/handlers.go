package handlers

// HandlerBundle groups every handler for route registration.
type HandlerBundle struct {
	Auth          *AuthHandler
	User          *UserHandler
	Anniversaries *AnniversaryHandler
	Memories      *MemoryHandler
	Storage       *StorageHandler
	Reminders     *ReminderHandler
}
