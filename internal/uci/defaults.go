package uci

var cmdQuit = Command{
	Name: "quit",
	Run: func(i Interaction) error {
		return errQuit
	},
}

var cmdIsReady = Command{
	Name: "isready",
	Run: func(i Interaction) error {
		i.Reply("readyok")
		return nil
	},
}
