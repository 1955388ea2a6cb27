package report

// educationMarkdown is the fixed educational appendix, authored as markdown
// and parsed into content blocks at build time.
const educationMarkdown = `# Understanding the Indicators

## Moving Averages

A moving average smooths price data over a fixed window to reveal the
underlying trend. The short-period average reacts quickly to recent price
action while the long-period average filters out noise.

- **Golden Cross**: the short moving average crosses above the long moving average, historically a bullish signal.
- **Death Cross**: the short moving average crosses below the long moving average, historically a bearish signal.
- Price trading above both averages generally confirms an uptrend.

## Relative Strength Index (RSI)

The RSI is a momentum oscillator bounded between 0 and 100.

- Below 30: oversold, potential buying opportunity.
- Above 70: overbought, potential selling pressure.
- Between 30 and 70: neutral territory, no momentum edge.

Divergence between RSI and price often precedes a reversal.

## Bollinger Bands

Bollinger Bands plot a moving average with bands two standard deviations
above and below it. Price touching the upper band suggests overextension,
while price at the lower band suggests oversold conditions. A squeeze in
band width often precedes a volatility expansion.

## Risk Management

- Position sizing matters more than entry timing.
- Always define an exit before entering a trade.
- Diversify across uncorrelated assets.
- Never invest more than you can afford to lose.
`
