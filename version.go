package mdp

// Version of the module, surfaced by the CLI.
const Version = "0.1.0"
