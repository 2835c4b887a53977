package models

// Record shapes for the remaining resource panels. All of these are
// server-owned documents; the gateway never invents ids, creation bodies omit
// the id and the backend assigns one in its response.

type Review struct {
	ID           string  `json:"id,omitempty"`
	MongoID      string  `json:"_id,omitempty"`
	ReviewerName string  `json:"reviewer_name"`
	ReviewDate   string  `json:"review_date"`
	City         string  `json:"city"`
	ReviewText   string  `json:"review_text"`
	Rating       float64 `json:"rating"`
	CreatedAt    string  `json:"created_at,omitempty"`
}

var FAQCategories = []string{
	"Buying",
	"Selling",
	"Post-Sale Support for Car Sellers",
	"Post-Sale Support for Car Buyers",
	"General",
}

type FAQ struct {
	ID        string `json:"id,omitempty"`
	MongoID   string `json:"_id,omitempty"`
	Category  string `json:"category"`
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	Link      string `json:"link,omitempty"`
	ImageURL  string `json:"image_url,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

type FAQCategorySummary struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

type Testimonial struct {
	ID        string  `json:"id,omitempty"`
	MongoID   string  `json:"_id,omitempty"`
	FullName  string  `json:"fullName"`
	Rating    float64 `json:"rating"`
	Message   string  `json:"message"`
	ImageURL  string  `json:"image_url,omitempty"`
	CreatedAt string  `json:"created_at,omitempty"`
}

type LoveStory struct {
	ID          string `json:"id,omitempty"`
	MongoID     string `json:"_id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
}

var (
	SellCarConditions = []string{"excellent", "good", "average", "needs_work"}
	SellCarStatuses   = []string{"pending", "approved", "rejected", "sold"}
)

type Seller struct {
	FullName      string `json:"fullName"`
	Email         string `json:"email"`
	PhoneNumber   string `json:"phoneNumber"`
	PhoneVerified bool   `json:"phoneVerified"`
}

type SellCarRequest struct {
	ID              string `json:"id,omitempty"`
	MongoID         string `json:"_id,omitempty"`
	Brand           string `json:"brand"`
	Model           string `json:"model"`
	Variant         string `json:"variant"`
	Year            string `json:"year"`
	FuelType        string `json:"fuelType"`
	Transmission    string `json:"transmission"`
	KmDriven        string `json:"kmDriven"`
	Owner           string `json:"owner"`
	City            string `json:"city"`
	State           string `json:"state"`
	Condition       string `json:"condition"`
	AccidentHistory bool   `json:"accidentHistory"`
	ExpectedPrice   string `json:"expectedPrice"`
	Negotiable      bool   `json:"negotiable"`
	Status          string `json:"status"`
	AdminStatement  string `json:"adminStatement"`
	Seller          Seller `json:"seller"`
	CreatedAt       string `json:"created_at,omitempty"`
}

const TestDriveHubLocation = "30/A, Dumdum, Station Road"

var TestDriveTimeSlots = []string{
	"10:00-11:00",
	"11:00-12:00",
	"12:00-13:00",
	"13:00-14:00",
	"14:00-15:00",
	"15:00-16:00",
	"16:00-17:00",
	"17:00-18:00",
	"18:00-19:00",
	"19:00-20:00",
}

var TestDriveStatuses = []string{"booked", "cancelled", "completed"}

type TestDriveBooking struct {
	ID            string `json:"id,omitempty"`
	MongoID       string `json:"_id,omitempty"`
	CarID         string `json:"car_id"`
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
	HubLocation   string `json:"hub_location"`
	Date          string `json:"date"`
	TimeSlot      string `json:"time_slot"`
	Status        string `json:"status"`
	CreatedAt     string `json:"created_at,omitempty"`
}

// TestDriveSlots is the availability answer for GET /test-drives/slots.
type TestDriveSlots struct {
	CarID string   `json:"car_id"`
	Date  string   `json:"date"`
	Slots []string `json:"slots"`
}

var CallbackStatuses = []string{"pending", "not received", "done"}

type CallbackRequest struct {
	ID             string `json:"id,omitempty"`
	MongoID        string `json:"_id,omitempty"`
	FullName       string `json:"fullName"`
	PhoneNumber    string `json:"phoneNumber"`
	Email          string `json:"email"`
	BudgetRange    string `json:"budgetRange"`
	PreferredBrand string `json:"preferredBrand"`
	Description    string `json:"description"`
	Status         string `json:"status"`
	AdminComment   string `json:"adminComment"`
	CreatedAt      string `json:"created_at,omitempty"`
}

type NewsletterSubscription struct {
	ID        string `json:"id,omitempty"`
	MongoID   string `json:"_id,omitempty"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at,omitempty"`
}

type RecentCarView struct {
	CarID    string `json:"car_id"`
	Title    string `json:"title,omitempty"`
	ViewedAt string `json:"viewed_at,omitempty"`
}
