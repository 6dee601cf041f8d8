package webpath

const (
	Home    = "/"
	Signin  = "/signin"
	Signout = "/signout"
	Profile = "/profile"

	Matches          = "/matches"
	NewMatch         = Matches + "/new"
	EditMatch        = Matches + "/:id/edit"
	MatchScore       = Matches + "/:id/score"
	DeleteMatch      = Matches + "/:id/delete"
	MatchAttend      = Matches + "/:id/attend"
	MatchAttendance  = Matches + "/:id/attendance"
	MatchPresence    = Matches + "/:id/presence/:playerID"
	MatchEvaluations = Matches + "/:id/evaluations"
	EvaluatePlayer   = Matches + "/:id/evaluations/:playerID"

	Trainings          = "/trainings"
	NewTraining        = Trainings + "/new"
	EditTraining       = Trainings + "/:id/edit"
	DeleteTraining     = Trainings + "/:id/delete"
	TrainingAttend     = Trainings + "/:id/attend"
	TrainingAttendance = Trainings + "/:id/attendance"
	TrainingPresence   = Trainings + "/:id/presence/:playerID"

	Players      = "/players"
	NewPlayer    = Players + "/new"
	PlayerCard   = Players + "/:id"
	EditPlayer   = Players + "/:id/edit"
	DeletePlayer = Players + "/:id/delete"

	Users      = "/users"
	NewUser    = Users + "/new"
	EditUser   = Users + "/:id/edit"
	DeleteUser = Users + "/:id/delete"

	Items   = "/items"
	NewItem = Items + "/new"
)

// Path exposes the route table to templates; parameterized routes are
// built in the templates from the list entries instead.
func Path() map[string]string {
	return map[string]string{
		"Home":        Home,
		"SignIn":      Signin,
		"SignOut":     Signout,
		"Profile":     Profile,
		"Matches":     Matches,
		"NewMatch":    NewMatch,
		"Trainings":   Trainings,
		"NewTraining": NewTraining,
		"Players":     Players,
		"NewPlayer":   NewPlayer,
		"Users":       Users,
		"NewUser":     NewUser,
		"Items":       Items,
		"NewItem":     NewItem,
	}
}
