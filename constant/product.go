package constant

const (
	MessageProductCreated = "Product created successfully"
	MessageProductUpdated = "Product successfully updated"
	MessageProductEdited  = "Product successfully edited"
	MessageOrderPlaced    = "Order placed successfully"
	MessageChatSent       = "Chat message sent successfully"
	MessageLoggedOut      = "Logged out successfully"
)

// OfferTimeLayout is the layout used when an offer expiration is rendered as text.
const OfferTimeLayout = "2006-01-02 15:04:05"
