package workers

// DefaultRoster are the simulated users, registered first so they get IDs 1 to 5.
var DefaultRoster = []string{"Akito", "Kazuki", "Miku", "Chisato", "Yumi"}

// DefaultScript is the conversation played by the producer at startup.
var DefaultScript = []ScriptLine{
	{SenderID: 1, Content: "Hello everyone!"},
	{SenderID: 2, Content: "Hi!, how are you?"},
	{SenderID: 1, Content: "I'm good, thanks for asking!"},
	{SenderID: 3, Content: "Hello folks, what are we discussing today?"},
	{SenderID: 4, Content: "Just catching up, Akito."},
	{SenderID: 5, Content: "Let's talk about Go programming."},
}
