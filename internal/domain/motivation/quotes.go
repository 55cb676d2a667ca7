package motivation

// Quotes are shown one at a time, in order.
var Quotes = []string{
	"Keep coding — your AI skills are growing! 💻",
	"Small steps today, big AI tomorrow! 🚀",
	"You're building something amazing! 🌟",
	"Every line of code brings you closer to mastery! 💪",
	"Learning Python + AI = Unlocking the future! 🔓",
	"Progress over perfection. Keep going! ⭐",
	"Your future self will thank you for this! 🎯",
	"Consistency is the key to success! 🔑",
}
