package t1024

// Goal stages. The game starts chasing GoalMilestone; reaching it upgrades
// the goal to GoalFinal for the rest of the game.
const (
	GoalMilestone = 1024
	GoalFinal     = 2048
)

// CheckMilestone upgrades the goal to GoalFinal once the board holds a tile
// of at least GoalMilestone. Any other goal is returned unchanged.
func CheckMilestone(board Board, goal int) int {
	if goal == GoalMilestone && MaxTile(board) >= GoalMilestone {
		return GoalFinal
	}
	return goal
}

// IsWin reports the final win: goal already upgraded and a tile >= 2048.
func IsWin(board Board, goal int) bool {
	return goal == GoalFinal && MaxTile(board) >= GoalFinal
}

// IsGameOver returns true if the board is full and no adjacent pair matches.
func IsGameOver(board Board) bool {
	return !CanMove(board)
}
