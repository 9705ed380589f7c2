package entities

// SMS уведомление для внешнего SMS-шлюза. Доставка идет через очередь,
// сервисы не ждут подтверждения отправки.
type SMS struct {
	Mobile   string
	Message  string
	ParcelID int64
}
