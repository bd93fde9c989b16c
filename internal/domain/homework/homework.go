// internal/domain/homework/homework.go
package homework

// Keys inspected in the decoded API response. Anything else is ignored.
const (
	KeyHomeworks = "homeworks"
	KeyName      = "homework_name"
	KeyStatus    = "status"
)

// Status is a verdict code reported by the review API.
type Status string

const (
	StatusApproved  Status = "approved"
	StatusReviewing Status = "reviewing"
	StatusRejected  Status = "rejected"
)

// Verdicts maps every known status code to the sentence sent to the chat.
var Verdicts = map[Status]string{
	StatusApproved:  "The work has been reviewed: the reviewer liked everything. Hooray!",
	StatusReviewing: "The work has been taken for review by the reviewer.",
	StatusRejected:  "The work has been reviewed: the reviewer has comments.",
}
