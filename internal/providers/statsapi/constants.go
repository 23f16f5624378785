package statsapi

const (
	// ProviderName labels logs and metrics for the league stats API.
	ProviderName   = "statsapi"
	defaultBaseURL = "http://statsapi.web.nhl.com/api/v1"

	schedulePath  = "/schedule"
	linescorePath = "/game/%d/linescore"

	// defaultMaxConcurrent bounds in-flight linescore requests per batch. A regular
	// season slate fits under it, so every game is fetched at once in practice.
	defaultMaxConcurrent = 16

	postponedState = "Postponed"

	clockFinal        = "Final"
	clockEnd          = "END"
	clockPeriodStart  = "20:00"
	defaultOrdinal    = "1st"
	defaultSkaters    = 5
	intermissionLabel = " INT"
)
