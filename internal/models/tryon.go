package models

// TryOn is a stored virtual try-on result. Append-only from the client's
// perspective; deletable individually.
type TryOn struct {
	ID              string `json:"id"`
	UserID          string `json:"user_id"`
	HumanImageURL   string `json:"human_image_url"`
	GarmentImageURL string `json:"garment_image_url"`
	ClothType       string `json:"cloth_type"`
	ResultImageURL  string `json:"result_image_url"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
}
