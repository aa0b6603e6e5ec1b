package models

// DialogueState показывает, ждёт ли бот от пользователя свободный текст
type DialogueState int

const (
	StateIdle DialogueState = iota
	StateAwaitingCity
)

func (s DialogueState) String() string {
	switch s {
	case StateAwaitingCity:
		return "awaiting_city"
	default:
		return "idle"
	}
}

// ParseDialogueState разбирает значение, сохранённое во внешнем хранилище
func ParseDialogueState(s string) DialogueState {
	if s == StateAwaitingCity.String() {
		return StateAwaitingCity
	}
	return StateIdle
}
