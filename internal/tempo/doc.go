// Package tempo plans chains of ffmpeg atempo filters.
//
// A single atempo stage cannot speed audio up by more than MaxStage, so a
// larger tempo is split into bounding stages of exactly 2 followed by one
// remainder stage:
//
//	amount=0.5  -> atempo=2.0000…0000
//	amount=0.1  -> atempo=2,atempo=2,atempo=2,atempo=1.2500…0000
//
// amount is the desired duration ratio, so the tempo applied is 1/amount.
package tempo
