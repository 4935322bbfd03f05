// package model contains the data models for the todo application
package model

// Todo represents a single task item
type Todo struct {
	ID          int    `json:"id" doc:"Unique identifier for the todo item" example:"1"`
	Title       string `json:"title" doc:"Title of the todo item" example:"Learn Go"`
	Description string `json:"description,omitempty" doc:"Detailed description of the todo item" example:"Work through the tour of Go"`
}

// TodoDraft is the creation payload: a Todo without a server-assigned id
type TodoDraft struct {
	Title       string `json:"title" doc:"Title of the todo item" example:"Learn Go"`
	Description string `json:"description,omitempty" doc:"Detailed description of the todo item" example:"Work through the tour of Go"`
}

// TodoUpdate is the replacement payload for PUT requests. Title and
// Description are pointers so a field absent from the JSON body can be told
// apart from one explicitly set to the empty string: absent fields keep
// their prior value, present fields overwrite.
type TodoUpdate struct {
	ID          int     `json:"id" doc:"Identifier of the todo item to update" example:"1"`
	Title       *string `json:"title,omitempty" doc:"New title, if present" example:"Learn Go"`
	Description *string `json:"description,omitempty" doc:"New description, if present" example:"Work through the tour of Go"`
}
