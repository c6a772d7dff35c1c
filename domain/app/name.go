package app

// Name is the program name used for the binary, the log file prefix and the
// version banner.
const Name = "jerry"
