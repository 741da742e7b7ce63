package dto

import "github.com/jhoicas/painel-ajuda/internal/application/notify"

// NotificationListView notificaciones activas, de la más antigua a la más reciente.
type NotificationListView struct {
	Notificacoes []notify.Notification `json:"notificacoes"`
}
