package panel

import (
	"sync"

	"github.com/carbazaar/admin-gateway/internal/backend"
	"github.com/carbazaar/admin-gateway/internal/models"
)

// Set holds one controller per resource panel for a single gateway session.
// Each panel loads its own data independently; the active-panel selection is
// client-local and never persisted.
type Set struct {
	Cars             *Controller[models.Car]
	Reviews          *Controller[models.Review]
	FAQs             *Controller[models.FAQ]
	Testimonials     *Controller[models.Testimonial]
	LoveStories      *Controller[models.LoveStory]
	SellCars         *Controller[models.SellCarRequest]
	TestDrives       *Controller[models.TestDriveBooking]
	CallbackRequests *Controller[models.CallbackRequest]
	Newsletter       *Controller[models.NewsletterSubscription]
	Users            *Controller[models.AdminUser]
}

func NewSet(client *backend.Client) *Set {
	return &Set{
		Cars:             NewController[models.Car](client, "cars", "/cars", UpdateWithPatch),
		Reviews:          NewController[models.Review](client, "reviews", "/reviews", UpdateWithPatch),
		FAQs:             NewController[models.FAQ](client, "faqs", "/faqs", UpdateWithPatch),
		Testimonials:     NewController[models.Testimonial](client, "testimonials", "/testimonials", UpdateWithPut),
		LoveStories:      NewController[models.LoveStory](client, "love-stories", "/love-stories", UpdateWithPatch),
		SellCars:         NewController[models.SellCarRequest](client, "sell-cars", "/sell-cars", UpdateWithPatch),
		TestDrives:       NewController[models.TestDriveBooking](client, "test-drives", "/test-drives", UpdateWithPatch),
		CallbackRequests: NewController[models.CallbackRequest](client, "callback-requests", "/callback-requests", UpdateWithPatch),
		Newsletter:       NewController[models.NewsletterSubscription](client, "newsletter", "/newsletter", UpdateWithPut),
		Users:            NewController[models.AdminUser](client, "users", "/users", UpdateWithPatch),
	}
}

// Registry maps gateway session ids to their panel sets. Sets are created
// lazily on first use and dropped when the session ends.
type Registry struct {
	client *backend.Client

	mu   sync.Mutex
	sets map[string]*Set
}

func NewRegistry(client *backend.Client) *Registry {
	return &Registry{
		client: client,
		sets:   make(map[string]*Set),
	}
}

func (r *Registry) Get(sessionID string) *Set {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, exists := r.sets[sessionID]
	if !exists {
		set = NewSet(r.client)
		r.sets[sessionID] = set
	}
	return set
}

func (r *Registry) Drop(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sets, sessionID)
}
