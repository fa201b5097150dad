package constant

const (
	// TopicSubmissionCompleted is the internal bus topic the engine publishes
	// completed intakes on.
	TopicSubmissionCompleted = "SUBMISSION_COMPLETED"
)
