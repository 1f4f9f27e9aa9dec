package portal

// Route paths the embedding router navigates between. The router itself
// is not part of this layer; these constants just keep both sides
// naming the same screens.
const (
	RouteLogin         = "/login"
	RouteDashboard     = "/dashboard"
	RouteSchedule      = "/schedule"
	RoutePractitioner  = "/practitioner"
	RouteProgress      = "/progress"
	RouteFeedback      = "/feedback"
	RouteNotifications = "/notifications"
)

// ProtectedRoutes are the screens that require an authenticated session;
// anything else (including unknown paths) falls back to the dashboard,
// and unauthenticated access redirects to the login screen.
func ProtectedRoutes() []string {
	return []string{
		RouteDashboard,
		RouteSchedule,
		RoutePractitioner,
		RouteProgress,
		RouteFeedback,
		RouteNotifications,
	}
}
