package mailer

import (
	"sync"

	"gopkg.in/gomail.v2"

	"github.com/jhoicas/almacen-api/internal/application/notify"
	"github.com/jhoicas/almacen-api/pkg/config"
	"github.com/jhoicas/almacen-api/pkg/logger"
)

// Sender envía un mensaje ya construido. Lo implementa GomailSender; los
// tests inyectan un fake.
type Sender interface {
	Send(msg notify.Message) error
}

// GomailSender envía correos por SMTP usando gomail.
type GomailSender struct {
	dialer *gomail.Dialer
	from   string
	name   string
}

// NewGomailSender construye el sender SMTP desde la configuración.
func NewGomailSender(cfg config.MailConfig) *GomailSender {
	return &GomailSender{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
		name:   cfg.FromName,
	}
}

// Send envía un correo de texto plano.
func (s *GomailSender) Send(msg notify.Message) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.from, s.name)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Body)
	return s.dialer.DialAndSend(m)
}

var _ notify.Notifier = (*Dispatcher)(nil)

// Dispatcher despacha notificaciones en segundo plano. Enqueue nunca bloquea:
// con la cola llena el mensaje se descarta con un warning. Un fallo de envío
// se loguea y se descarta; jamás afecta la operación que originó el correo.
type Dispatcher struct {
	sender Sender
	log    *logger.Logger
	queue  chan notify.Message
	wg     sync.WaitGroup

	closeOnce sync.Once
}

// NewDispatcher arranca el consumidor con una cola de tamaño fijo.
func NewDispatcher(sender Sender, queueSize int, log *logger.Logger) *Dispatcher {
	if queueSize <= 0 {
		queueSize = 64
	}
	d := &Dispatcher{
		sender: sender,
		log:    log,
		queue:  make(chan notify.Message, queueSize),
	}
	d.wg.Add(1)
	go d.consume()
	return d
}

// Enqueue encola una notificación sin bloquear.
func (d *Dispatcher) Enqueue(msg notify.Message) {
	select {
	case d.queue <- msg:
	default:
		d.log.Warn().Str("to", msg.To).Str("subject", msg.Subject).
			Msg("cola de correo llena, notificación descartada")
	}
}

// Close cierra la cola y espera a que se drene lo pendiente.
func (d *Dispatcher) Close() {
	d.closeOnce.Do(func() {
		close(d.queue)
	})
	d.wg.Wait()
}

func (d *Dispatcher) consume() {
	defer d.wg.Done()
	for msg := range d.queue {
		if err := d.sender.Send(msg); err != nil {
			d.log.Error().Err(err).Str("to", msg.To).Str("subject", msg.Subject).
				Msg("error enviando correo")
			continue
		}
		d.log.Debug().Str("to", msg.To).Str("subject", msg.Subject).Msg("correo enviado")
	}
}
