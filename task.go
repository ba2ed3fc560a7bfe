package nms

import "fmt"

// Task records one completed (or failed) provisioning step. Status carries
// the HTTP status of the remote call that performed the step, or a synthetic
// local status for steps that failed before any call was made.
type Task struct {
	Name    string `json:"name"`
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func (t Task) String() string {
	return fmt.Sprintf("%s: %d %s", t.Name, t.Status, t.Message)
}

// Outcome is the structured, exception-free progress report returned by every
// reconciliation step. Completed lists the steps that already took effect
// remotely, in order. Failed, when set, is the step that aborted the pipeline;
// nothing after it ran, and nothing before it is rolled back.
type Outcome struct {
	Completed []Task `json:"completedTasks"`
	Failed    *Task  `json:"errorTask,omitempty"`
}

// Succeeded reports whether the run completed without a terminating error.
func (o Outcome) Succeeded() bool {
	return o.Failed == nil
}

// Append adds a completed task.
func (o Outcome) Append(t Task) Outcome {
	o.Completed = append(o.Completed, t)
	return o
}

// Abort marks the outcome failed at t.
func (o Outcome) Abort(t Task) Outcome {
	o.Failed = &t
	return o
}

// Merge concatenates the completed tasks of other onto o and adopts its
// failure, if any.
func (o Outcome) Merge(other Outcome) Outcome {
	o.Completed = append(o.Completed, other.Completed...)
	if other.Failed != nil {
		o.Failed = other.Failed
	}
	return o
}
