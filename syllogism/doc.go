// Package syllogism implements a small inference engine for classical
// term logic. A major and a minor categorical premise are matched against
// a fixed table of recognized syllogistic figures (Barbara, Celarent,
// Baroco, Darapti) to derive the unique conclusion the figure prescribes.
//
// All values are immutable once constructed and the engine holds no state,
// so NewPremise and Conclude are safe to call from any number of
// goroutines without coordination.
package syllogism
