// Package notify implementa el puerto Notifier sobre el logger estructurado:
// el CLI no renderiza toasts, las notificaciones terminan en la salida.
package notify

import "github.com/jhoicas/Repuestos-sync/pkg/logger"

// LogNotifier escribe las notificaciones como eventos de log.
type LogNotifier struct {
	log *logger.Logger
}

// NewLog construye el notificador sobre el logger dado.
func NewLog(log *logger.Logger) *LogNotifier {
	if log == nil {
		log = logger.Nop()
	}
	return &LogNotifier{log: log}
}

// NotifySuccess registra el mensaje como info.
func (n *LogNotifier) NotifySuccess(message string) {
	n.log.Info().Str("tipo", "exito").Msg(message)
}

// NotifyError registra el mensaje como error.
func (n *LogNotifier) NotifyError(message string) {
	n.log.Error().Str("tipo", "error").Msg(message)
}
