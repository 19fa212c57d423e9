// Package audio plays the ringing sound through a command-line player.
//
// The default command depends on the OS; settings may override it. Player
// owns at most one running sound and is the only handle able to stop it.
package audio
