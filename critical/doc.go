// Package critical
// Author: momentics <momentics@gmail.com>
//
// Critical-section provider registry. The embedded platform layer installs
// its interrupt-masking section at startup via Use; hosted builds default to
// a spin section so the few-instruction atomic regions stay correct when
// interrupt handlers are emulated by other OS threads.
package critical
