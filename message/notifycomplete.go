package message

type NotifyCompleteData struct {
    Scores []int

    // Seat index of the winner, -1 on a tie.
    Winner int
}
