package bot

// User-facing texts. Kept together so the bot's voice stays consistent.
const (
	welcomeMessage = `🎵 *Welcome to Music Downloader Bot!* 🎵

I can help you download your favorite music.
Just follow these simple steps:

1️⃣ Send me the name of the song or artist you're looking for
2️⃣ I'll show you matching results
3️⃣ Select the song you want to download
4️⃣ Wait a moment while I prepare your music file
5️⃣ Enjoy your music! 🎧

*Commands:*
/start - Show this welcome message
/help - Get help with using the bot

Created with ❤️ by @zerocreations`

	helpMessage = "To download music, simply send me the name of the song or artist.\n" +
		"I'll show you matching results. Then select the song you want to download."

	greetingFormat = "👋 Hello %s!"

	searchingStatusFormat = "🔍 Searching for: '%s'..."

	noResultsMessage = "❌ No results found. Please try a different search."

	searchFailedMessage = "❌ Something went wrong while searching. Please try again."

	selectSongPrompt = "Select a song to download:"

	downloadingStatus = "⏳ Downloading your music... Please wait."

	downloadCompleteFormat = "✅ Download complete: %s"

	downloadFailedMessage = "❌ Sorry, there was an error downloading this song. Please try another one."

	audioTooLargeMessage = "❌ Sorry, this track is too large to deliver. Please pick another one."

	staleSelectionMessage = "⌛ That selection is no longer available. Please search again."

	tooManyDownloadsMessage = "🚦 You already have downloads in progress. Please wait for them to finish."

	audioCaptionFormat = "🎵 %s 🎵\n\nEnjoy your music! 🎧"
)
