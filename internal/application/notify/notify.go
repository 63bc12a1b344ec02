package notify

// Message es una solicitud de notificación lista para despachar.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Notifier encola notificaciones de mejor esfuerzo. Enqueue nunca bloquea al
// caller ni devuelve error: un fallo de despacho jamás afecta la operación
// que lo produjo.
type Notifier interface {
	Enqueue(msg Message)
}

// Discard es un Notifier que descarta todo. Útil en tests y en arranques sin SMTP.
type Discard struct{}

func (Discard) Enqueue(Message) {}
