package main

import "numberhunt/contract"

// Wasm entry points. Thin wrappers so the engine stays testable against
// any SDKInterface implementation.

//go:wasmexport g_create
func CreateGame(payload *string) *string {
	return contract.CreateGame(payload, contract.RealSDK{})
}

//go:wasmexport g_guess
func GuessNumber(payload *string) *string {
	return contract.GuessNumber(payload, contract.RealSDK{})
}

//go:wasmexport g_get
func GetGameInfo(payload *string) *string {
	return contract.GetGameInfo(payload, contract.RealSDK{})
}

//go:wasmexport g_winner
func GetGameWinner(payload *string) *string {
	return contract.GetGameWinner(payload, contract.RealSDK{})
}

//go:wasmexport g_guesscount
func GetGuessCount(payload *string) *string {
	return contract.GetGuessCount(payload, contract.RealSDK{})
}

//go:wasmexport g_pool
func GetPrizePool(payload *string) *string {
	return contract.GetPrizePool(payload, contract.RealSDK{})
}

//go:wasmexport g_total
func GetTotalGames(payload *string) *string {
	return contract.GetTotalGames(payload, contract.RealSDK{})
}

//go:wasmexport g_active
func IsGameActive(payload *string) *string {
	return contract.IsGameActive(payload, contract.RealSDK{})
}

//go:wasmexport g_playerguesses
func GetPlayerGuesses(payload *string) *string {
	return contract.GetPlayerGuesses(payload, contract.RealSDK{})
}

//go:wasmexport g_attempt
func GetGuessAttempt(payload *string) *string {
	return contract.GetGuessAttempt(payload, contract.RealSDK{})
}

func main() {}
