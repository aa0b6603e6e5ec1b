package bot

// Kind: форма входящего апдейта
type Kind int

const (
	KindCommand Kind = iota + 1
	KindText
	KindCallback
)

func (k Kind) String() string {
	switch k {
	case KindCommand:
		return "command"
	case KindText:
		return "text"
	case KindCallback:
		return "callback"
	default:
		return "unknown"
	}
}

// MessageRef указывает на сообщение, которое можно отредактировать
type MessageRef struct {
	ChatID    int64
	MessageID int
}

// Callback: нажатие inline-кнопки
type Callback struct {
	ID      string
	Token   string
	Message *MessageRef // nil, если Telegram не прислал исходное сообщение
}

// Update: апдейт платформы, приведённый к одной из трёх форм
type Update struct {
	Kind    Kind
	UserID  int64
	ChatID  int64
	Command string
	Text    string

	Callback *Callback // только для KindCallback
}

// Origin определяет, отвечаем новым сообщением или правим существующее
type Origin interface {
	origin()
}

// MessageOrigin: ответ новым сообщением в чат
type MessageOrigin struct {
	ChatID int64
}

// CallbackOrigin: правка сообщения с кнопкой и подтверждение колбэка
type CallbackOrigin struct {
	CallbackID string
	Message    *MessageRef
}

func (MessageOrigin) origin()  {}
func (CallbackOrigin) origin() {}

func (u Update) Origin() Origin {
	if u.Kind == KindCallback && u.Callback != nil {
		return CallbackOrigin{CallbackID: u.Callback.ID, Message: u.Callback.Message}
	}
	return MessageOrigin{ChatID: u.ChatID}
}
