package llm

import "fmt"

// MovePrompt builds the conversation asking the model for its next
// move. The board is handed over as a character grid, uppercase white
// pieces, lowercase black pieces and dots for empty squares. The same
// payload is reused for every retry of a turn.
func MovePrompt(color, grid string) []Message {
	system := fmt.Sprintf("You are a chess bot playing as %s. "+
		"You reply with the optimal next move in standard algebraic chess notation "+
		"on the first line and nothing else and on the second line an explanation "+
		"of the move but without reprinting the board. The user will give you a "+
		"chess board configuration, where each piece is represented by a single "+
		"character. The uppercase letters represent the white pieces (K for king, "+
		"Q for queen, R for rook, B for bishop, N for knight and P for pawn), "+
		"while the corresponding lowercase letters represent the black pieces. "+
		"The dots represent empty squares on the board. The ranks are numbered "+
		"from 1 to 8, and the files are labeled from a to h.", color)

	return []Message{
		{Role: RoleSystem, Content: system},
		{Role: RoleAssistant, Content: "Ok."},
		{Role: RoleUser, Content: grid},
	}
}
