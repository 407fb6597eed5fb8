package entities

// Staff is a member of the shop's team who can be put on a production job.
//
// Storage model (DynamoDB):
//   - PK: id
type Staff struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
	Active bool   `json:"active"`
}
