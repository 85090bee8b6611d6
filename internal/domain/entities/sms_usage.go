package entities

// SmsUsage é o consumo mensal de SMS de um negócio.
// Month usa o formato "2006-01". Registros são escritos pelo pipeline
// de envio (fora deste serviço); aqui são apenas lidos para relatório.
type SmsUsage struct {
	ID         uint
	BusinessID string
	Month      string
	Sent       int
	Delivered  int
	Failed     int
}
