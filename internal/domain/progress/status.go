package progress

// CardStatus is how a day card is presented.
type CardStatus string

const (
	CardCompleted CardStatus = "completed"
	CardCurrent   CardStatus = "current" // First actionable incomplete day in sequence
	CardPending   CardStatus = "pending"
)
