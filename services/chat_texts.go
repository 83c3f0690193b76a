package services

// Fixed chat texts. The crisis reply deliberately refuses open conversation
// and points at the human help affordance; wording follows the product copy.

var crisisReplies = map[string]string{
	LangEN: "I hear that you are in pain, but I am just an AI. Please, for your safety, use the Crisis Help button to talk to a real person who can help.",
	LangZH: "我听到了你的痛苦，但我只是一个 AI。为了你的安全，请立刻点击“获取危机援助”按钮，寻找真人的帮助。",
}

var safetyNotices = map[string]string{
	LangEN: "If you ever feel unsafe or in crisis, please reach out to a trusted adult or local crisis hotline.",
	LangZH: "如果你有强烈自伤或伤人的想法，请优先联系身边可信任的成年人或紧急热线。",
}

var fallbackReplies = map[string]string{
	LangEN: "Sorry, I couldn't respond just now. Please try again in a moment.",
	LangZH: "抱歉，我暂时无法回应，请稍后再试。",
}

var personaInstructions = map[string]string{
	LangEN: "You are Glowtype AI, a supportive, gentle companion for anonymous emotional check-ins. Listen first, reply briefly and warmly, never diagnose, and never claim to be a therapist or a human. Reply in English.",
	LangZH: "你是 Glowtype AI，一个温柔、支持性的匿名情绪陪伴者。先倾听，再简短温暖地回应，不做诊断，也不要自称治疗师或人类。请用中文回复。",
}
