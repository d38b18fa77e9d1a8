package server

const uiPageChromeCSS = `
    :root {
      --bg: #faf6f1;
      --bg2: #f3e8dc;
      --card: #ffffff;
      --ink: #2b2420;
      --muted: #8a7b6e;
      --ok: #4a7c59;
      --bad: #b5544d;
      --warn: #c9892e;
      --accent: #9a6b4f;
      --line: #e4d7c9;
    }
    * { box-sizing: border-box; }
    :where(body, main, .card, p, h1, h2, h3, div, span, table, thead, tbody, tr, th, td, code, pre, input, textarea, select, label, a) {
      -webkit-user-select: text;
      user-select: text;
    }
    :where(button) {
      -webkit-user-select: none;
      user-select: none;
    }
    body {
      margin: 0;
      font-family: "Georgia", "Iowan Old Style", serif;
      color: var(--ink);
      background: linear-gradient(180deg, var(--bg2), var(--bg) 320px);
    }
    main { max-width: 1040px; margin: 28px auto; padding: 0 16px; }
    .card {
      background: var(--card);
      border: 1px solid var(--line);
      border-radius: 14px;
      padding: 18px;
      margin-bottom: 18px;
      box-shadow: 0 6px 20px rgba(154,107,79,.08);
    }
    .brand { display: flex; align-items: center; gap: 12px; }
    .muted { color: var(--muted); font-size: 13px; }
    a { color: var(--accent); text-decoration: none; }
    a:hover { text-decoration: underline; }
    button,
    a.nav-btn {
      border: 1px solid var(--line);
      border-radius: 8px;
      padding: 8px 10px;
      font-size: 14px;
      line-height: 1.1;
      background: #ffffff;
      color: var(--accent);
      cursor: pointer;
    }
    button:hover:not(:disabled),
    a.nav-btn:hover {
      background: #faf3ec;
      text-decoration: none;
    }
    button:disabled {
      opacity: 0.65;
      cursor: default;
    }
    button.danger {
      color: var(--bad);
    }
    a.nav-btn {
      display: inline-flex;
      align-items: center;
      gap: 6px;
      font-weight: 600;
    }
    a.nav-btn .nav-emoji {
      display: inline-flex;
      align-items: center;
      justify-content: center;
      font-size: 1.28em;
      line-height: 0.9;
    }
    .header { display: flex; justify-content: space-between; align-items: center; gap: 12px; flex-wrap: wrap; }
    .header-actions { display: flex; align-items: center; gap: 8px; flex-wrap: wrap; }
    .pill { font-size: 12px; padding: 2px 8px; border-radius: 999px; background: #f6ece2; color: #7a5438; }
    .pill.ok { background: #e8f2ea; color: var(--ok); }
    .pill.bad { background: #f8e8e6; color: var(--bad); }
    .pill.warn { background: #f9efdd; color: var(--warn); }
`
