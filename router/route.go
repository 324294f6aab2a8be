package router

const (
	LoginPath = "/login"
	HomePath  = "/"
)

// Route describes a navigable dashboard page.
type Route struct {
	Path         string
	Name         string
	Component    string
	Layout       string
	RequiresAuth bool
}

// Routes returns the dashboard route table.
func Routes() []*Route {
	return []*Route{
		{Path: LoginPath, Name: "Login", Component: "Login", Layout: "empty"},
		{Path: HomePath, Name: "Dashboard", Component: "Dashboard", RequiresAuth: true},
		{Path: "/leads", Name: "Leads", Component: "Leads", RequiresAuth: true},
		{Path: "/dealing-property", Name: "DealingProperty", Component: "DealingProperty", RequiresAuth: true},
		{Path: "/users", Name: "UserManagement", Component: "UserManagement", RequiresAuth: true},
	}
}
