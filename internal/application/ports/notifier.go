package ports

// Notifier es el colaborador de notificaciones: el núcleo le informa el
// resultado de las mutaciones y él decide cómo presentarlo (toast, log...).
// El núcleo no renderiza UI.
type Notifier interface {
	NotifySuccess(message string)
	NotifyError(message string)
}

// NopNotifier descarta toda notificación; útil en tests y en modo silencioso.
type NopNotifier struct{}

func (NopNotifier) NotifySuccess(string) {}
func (NopNotifier) NotifyError(string)   {}
