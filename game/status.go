package game

type Status int
const (
    StatusNone Status = iota
    Creating
    Running
    Abandoned
    Complete
)
var StatusNames = map[Status]string {
    StatusNone: "StatusNone",
    Creating: "Creating",
    Running: "Running",
    Abandoned: "Abandoned",
    Complete: "Complete",
}
