package domain

// ID is used across domain entities.
type ID = int64

// Role mirrors users.role_id. Zero means an anonymous visitor.
type Role int

const (
	RoleVisitor   Role = 0
	RoleAdmin     Role = 1
	RoleTraveller Role = 2
)

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleTraveller:
		return "traveller"
	default:
		return "visitor"
	}
}

// RequestContext carries the caller resolved once per request.
type RequestContext struct {
	UserID ID     `json:"userId"`
	Role   Role   `json:"role"`
	Name   string `json:"name,omitempty"`
}

func (rc RequestContext) IsAdmin() bool { return rc.Role == RoleAdmin }

// LoggedIn reports whether the request carries a traveller or admin session.
func (rc RequestContext) LoggedIn() bool {
	return rc.UserID > 0 && (rc.Role == RoleAdmin || rc.Role == RoleTraveller)
}

// Kind names an entity table. Dynamic SQL only ever interpolates Kind.Table().
type Kind string

const (
	KindUsers           Kind = "users"
	KindPackages        Kind = "packages"
	KindHotels          Kind = "hotels"
	KindGuides          Kind = "guides"
	KindTrips           Kind = "trips"
	KindBuses           Kind = "buses"
	KindTravellers      Kind = "travellers"
	KindBookings        Kind = "bookings"
	KindBookingFiles    Kind = "booking_files"
	KindSupportRequests Kind = "support_requests"
	KindActivityLog     Kind = "activity_log"
)

var kinds = map[Kind]struct{}{
	KindUsers: {}, KindPackages: {}, KindHotels: {}, KindGuides: {}, KindTrips: {},
	KindBuses: {}, KindTravellers: {}, KindBookings: {}, KindBookingFiles: {},
	KindSupportRequests: {}, KindActivityLog: {},
}

// ParseKind validates a kind coming from outside (URL params).
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if _, ok := kinds[k]; !ok {
		return "", ValidationError{Field: "kind", Msg: "jenis data tidak dikenal: " + s}
	}
	return k, nil
}

// Table returns the table name; it panics on a kind that was not declared above.
func (k Kind) Table() string {
	if _, ok := kinds[k]; !ok {
		panic("domain: unknown kind " + string(k))
	}
	return string(k)
}
