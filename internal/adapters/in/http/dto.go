package http

// Error is the uniform error payload.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// SessionCreatedResponse carries the identifier of a fresh session.
type SessionCreatedResponse struct {
	SessionID string `json:"sessionId"`
}

// KitResponse is a kit definition as served to clients.
type KitResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	TotalMeals   int    `json:"totalMeals"`
	Price        string `json:"price"`
	PricePerMeal string `json:"pricePerMeal"`
	Description  string `json:"description"`
	Highlight    bool   `json:"highlight"`
}

// MenuItemResponse is one menu entry.
type MenuItemResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Serving     string   `json:"serving"`
	ImageURL    string   `json:"imageUrl"`
	Tags        []string `json:"tags"`
}

// CategoryResponse groups menu entries under their category name.
type CategoryResponse struct {
	Name  string             `json:"name"`
	Items []MenuItemResponse `json:"items"`
}

// CatalogResponse carries kits and the filtered menu.
type CatalogResponse struct {
	Kits       []KitResponse      `json:"kits"`
	Categories []CategoryResponse `json:"categories"`
}

// ZoneResponse is one delivery fee tier.
type ZoneResponse struct {
	Label         string   `json:"label"`
	Fee           string   `json:"fee"`
	Neighborhoods []string `json:"neighborhoods"`
}

// PickupResponse is the store's pickup point.
type PickupResponse struct {
	Address  string `json:"address"`
	City     string `json:"city"`
	Hours    string `json:"hours"`
	MapsLink string `json:"mapsLink"`
}

// ZonesResponse carries the fee table and the pickup point.
type ZonesResponse struct {
	Zones  []ZoneResponse `json:"zones"`
	Pickup PickupResponse `json:"pickup"`
}

// SessionKitResponse is the chosen kit inside a session view.
type SessionKitResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	TotalMeals   int    `json:"totalMeals"`
	Price        string `json:"price"`
	PricePerMeal string `json:"pricePerMeal"`
}

// SessionLineResponse is one cart line inside a session view.
type SessionLineResponse struct {
	ItemID   string `json:"itemId"`
	Title    string `json:"title"`
	Quantity int    `json:"quantity"`
}

// SessionResponse is the full session view.
type SessionResponse struct {
	SessionID     string                `json:"sessionId"`
	Kit           *SessionKitResponse   `json:"kit,omitempty"`
	Lines         []SessionLineResponse `json:"lines"`
	TotalSelected int                   `json:"totalSelected"`
	Complete      bool                  `json:"complete"`
	Mode          string                `json:"mode"`
	Resolution    string                `json:"resolution"`
	Neighborhood  string                `json:"neighborhood,omitempty"`
	Fee           string                `json:"fee"`
	Total         string                `json:"total"`
}

// SelectKitRequest picks a kit for the session.
type SelectKitRequest struct {
	KitID string `json:"kitId"`
}

// ConfirmRequest acknowledges a destructive action.
type ConfirmRequest struct {
	Confirmed bool `json:"confirmed"`
}

// ConfirmationResponse asks the client to confirm before reissuing.
type ConfirmationResponse struct {
	ConfirmationRequired bool   `json:"confirmationRequired"`
	Prompt               string `json:"prompt"`
}

// AddItemRequest adds one unit of a menu item.
type AddItemRequest struct {
	ItemID string `json:"itemId"`
}

// AdjustQuantityRequest changes a cart line by a signed delta.
type AdjustQuantityRequest struct {
	Delta int `json:"delta"`
}

// CartChangeResponse reports the cart state after a mutation attempt.
type CartChangeResponse struct {
	Signal        string `json:"signal"`
	TotalSelected int    `json:"totalSelected"`
	Complete      bool   `json:"complete"`
}

// PostalCodeRequest submits a postal code for resolution.
type PostalCodeRequest struct {
	PostalCode string `json:"postalCode"`
}

// LookupResponse reports how a postal-code lookup settled.
type LookupResponse struct {
	Performed            bool   `json:"performed"`
	Result               string `json:"result,omitempty"`
	Neighborhood         string `json:"neighborhood,omitempty"`
	ExternalNeighborhood string `json:"externalNeighborhood,omitempty"`
	Street               string `json:"street,omitempty"`
	Fee                  string `json:"fee,omitempty"`
}

// NeighborhoodRequest selects a neighborhood by its table spelling.
type NeighborhoodRequest struct {
	Neighborhood string `json:"neighborhood"`
}

// ModeRequest switches the fulfillment mode.
type ModeRequest struct {
	Mode string `json:"mode"`
}

// SubmitOrderRequest carries the fulfillment form.
type SubmitOrderRequest struct {
	Name        string `json:"name"`
	Street      string `json:"street"`
	Number      string `json:"number"`
	PostalCode  string `json:"postalCode"`
	PickupTime  string `json:"pickupTime"`
	Observation string `json:"observation"`
	Payment     string `json:"payment"`
}

// ViolationsResponse lists the form fields that failed validation.
type ViolationsResponse struct {
	Violations []string `json:"violations"`
}

// OrderResponse is the finished order: the serialized message, the link
// that opens WhatsApp with it, and the charged total.
type OrderResponse struct {
	Message string `json:"message"`
	Link    string `json:"link"`
	Total   string `json:"total"`
}

// ChatEntry is one transcript message.
type ChatEntry struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// ChatRequest asks the nutrition assistant a question.
type ChatRequest struct {
	History []ChatEntry `json:"history"`
	Message string      `json:"message"`
}

// ChatResponse is the assistant's reply.
type ChatResponse struct {
	Reply string `json:"reply"`
}
