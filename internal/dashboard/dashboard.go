// Package dashboard assembles the back office landing page: greeting, operator
// badges, headline figures, recent activity and shortcuts.
package dashboard

import (
	"strings"
	"time"

	"github.com/talkincode/restopos/internal/customer"
	"github.com/talkincode/restopos/internal/domain"
)

const (
	DefaultName    = "User"
	DefaultRole    = "User"
	DefaultLicense = "Basic"
	DefaultCompany = "My Restaurant"
	FirstAccess    = "First access"
)

// Operator is the signed-in user as carried by the session token
type Operator struct {
	Username  string     `json:"username"`
	FullName  string     `json:"full_name"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	License   string     `json:"license"`
	Company   string     `json:"company"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

// ActivityStatus drives the icon and tone of an activity entry
type ActivityStatus string

const (
	StatusSuccess ActivityStatus = "success"
	StatusWarning ActivityStatus = "warning"
	StatusPending ActivityStatus = "pending"
	StatusInfo    ActivityStatus = "info"
)

// Tone maps a status to its highlight color; unknown statuses are neutral
func (s ActivityStatus) Tone() string {
	switch s {
	case StatusSuccess:
		return "green"
	case StatusWarning:
		return "yellow"
	case StatusPending:
		return "blue"
	}
	return "gray"
}

type Activity struct {
	ID     int            `json:"id"`
	Action string         `json:"action"`
	Time   string         `json:"time"`
	Status ActivityStatus `json:"status"`
	Tone   string         `json:"tone"`
	Amount string         `json:"amount,omitempty"`
}

type QuickAction struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Href        string `json:"href"`
	Icon        string `json:"icon"`
}

// CompanyInfo is the company card at the bottom of the dashboard
type CompanyInfo struct {
	Company    string `json:"company"`
	Plan       string `json:"plan"`
	ActiveUser string `json:"active_user"`
	LastAccess string `json:"last_access"`
}

type View struct {
	Greeting     string               `json:"greeting"`
	FirstName    string               `json:"first_name"`
	LocalTime    string               `json:"local_time"`
	Role         string               `json:"role"`
	License      string               `json:"license"`
	Company      CompanyInfo          `json:"company"`
	Products     *domain.ProductStats `json:"products,omitempty"`
	Customers    *customer.Stats      `json:"customers,omitempty"`
	Activities   []Activity           `json:"activities"`
	QuickActions []QuickAction        `json:"quick_actions"`
}

var recentActivities = []Activity{
	{ID: 1, Action: "New order #1234 - Table 5", Time: "2 minutes ago", Status: StatusPending, Amount: "$45.50"},
	{ID: 2, Action: "Customer registered: Juan Pérez", Time: "5 minutes ago", Status: StatusSuccess},
	{ID: 3, Action: "Out of stock: Classic Burger", Time: "10 minutes ago", Status: StatusWarning},
	{ID: 4, Action: "Reservation confirmed for 8:00 PM", Time: "15 minutes ago", Status: StatusInfo},
	{ID: 5, Action: "Payment processed - Order #1230", Time: "20 minutes ago", Status: StatusSuccess, Amount: "$78.25"},
}

var quickActions = []QuickAction{
	{Title: "New Sale", Description: "Process a new order", Href: "/ventas/pos", Icon: "shopping-cart"},
	{Title: "Reservations", Description: "Manage bookings", Href: "/reservaciones", Icon: "calendar"},
	{Title: "Manage Products", Description: "Update the menu", Href: "/productos", Icon: "package"},
	{Title: "Reports", Description: "Sales analysis", Href: "/reportes", Icon: "bar-chart"},
}

// FirstName is the first word of the full name, else the local part of the
// email, else DefaultName.
func FirstName(op Operator) string {
	if f := strings.Fields(op.FullName); len(f) > 0 {
		return f[0]
	}
	if local, _, _ := strings.Cut(op.Email, "@"); local != "" {
		return local
	}
	return DefaultName
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

// Build assembles the dashboard for op at now. Either stats block may be nil.
func Build(op Operator, now time.Time, products *domain.ProductStats, customers *customer.Stats) View {
	first := FirstName(op)
	lastAccess := FirstAccess
	if op.LastLogin != nil && !op.LastLogin.IsZero() {
		lastAccess = op.LastLogin.In(now.Location()).Format("02/01/2006")
	}

	activeUser := op.FullName
	if activeUser == "" {
		activeUser = orDefault(op.Email, DefaultName)
	}

	activities := make([]Activity, len(recentActivities))
	for i, a := range recentActivities {
		a.Tone = a.Status.Tone()
		activities[i] = a
	}
	actions := make([]QuickAction, len(quickActions))
	copy(actions, quickActions)

	return View{
		Greeting:  "Welcome, " + first + "!",
		FirstName: first,
		LocalTime: now.Format("15:04"),
		Role:      orDefault(op.Role, DefaultRole),
		License:   orDefault(op.License, DefaultLicense),
		Company: CompanyInfo{
			Company:    orDefault(op.Company, DefaultCompany),
			Plan:       orDefault(op.License, DefaultLicense),
			ActiveUser: activeUser,
			LastAccess: lastAccess,
		},
		Products:     products,
		Customers:    customers,
		Activities:   activities,
		QuickActions: actions,
	}
}
